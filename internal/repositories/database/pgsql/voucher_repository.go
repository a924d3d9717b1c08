package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/models"
	"github.com/crestprop/lease_ledger_app/internal/utils/mapping"
	"github.com/crestprop/lease_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultVoucherPageSize = 50

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates the repository for voucher, line,
// attachment and approval log data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

// voucherNoPrefix maps a voucher type to its number series prefix.
func voucherNoPrefix(t models.VoucherType) string {
	switch t {
	case models.PaymentVoucher:
		return "PV"
	case models.LeaseRevenueVoucher:
		return "LR"
	default:
		return "JV"
	}
}

// nextVoucherNo advances the per-company, per-type, per-year sequence inside
// the surrounding transaction and formats the voucher number.
func nextVoucherNo(ctx context.Context, tx pgx.Tx, companyID string, voucherType models.VoucherType, fiscalYear string) (string, error) {
	var next int64
	err := tx.QueryRow(ctx, `
		INSERT INTO voucher_sequences (company_id, voucher_type, fiscal_year, next_no)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, voucher_type, fiscal_year)
		DO UPDATE SET next_no = voucher_sequences.next_no + 1
		RETURNING next_no;
	`, companyID, string(voucherType), fiscalYear).Scan(&next)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to advance voucher sequence", err)
	}
	return fmt.Sprintf("%s-%s-%06d", voucherNoPrefix(voucherType), fiscalYear, next), nil
}

const voucherColumns = `
	voucher_no, posting_id, voucher_type, company_id, fiscal_year,
	transaction_date, posting_date, currency_code, exchange_rate, total_amount,
	narration, posting_status, requires_approval, approval_status,
	approved_by, approved_at, approval_comments,
	is_reversed, reversal_of_voucher_no, reversed_by_voucher_no, reversal_reason,
	payment_method, payment_account_id, bank_id, cheque_no, cheque_date, paid_to,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (*models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherNo, &m.PostingID, &m.VoucherType, &m.CompanyID, &m.FiscalYear,
		&m.TransactionDate, &m.PostingDate, &m.CurrencyCode, &m.ExchangeRate, &m.TotalAmount,
		&m.Narration, &m.PostingStatus, &m.RequiresApproval, &m.ApprovalStatus,
		&m.ApprovedBy, &m.ApprovedAt, &m.ApprovalComments,
		&m.IsReversed, &m.ReversalOfVoucherNo, &m.ReversedByVoucherNo, &m.ReversalReason,
		&m.PaymentMethod, &m.PaymentAccountID, &m.BankID, &m.ChequeNo, &m.ChequeDate, &m.PaidTo,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindVoucherByNo retrieves a voucher header by its number.
func (r *PgxVoucherRepository) FindVoucherByNo(ctx context.Context, voucherNo string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_no = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherNo))
	if err != nil {
		return nil, translateError(err, "voucher "+voucherNo+" not found")
	}
	voucher := mapping.ToDomainVoucher(*m)
	return &voucher, nil
}

// FindLinesByVoucherNo retrieves all lines of a voucher in insertion order.
func (r *PgxVoucherRepository) FindLinesByVoucherNo(ctx context.Context, voucherNo string) ([]domain.VoucherLine, error) {
	query := `
		SELECT line_id, voucher_no, account_id, debit_amount, credit_amount,
		       transaction_type, cost_center_id, customer_id, supplier_id, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM voucher_lines WHERE voucher_no = $1 ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, voucherNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query voucher lines", err)
	}
	defer rows.Close()

	var lines []domain.VoucherLine
	for rows.Next() {
		var m models.VoucherLine
		if err := rows.Scan(
			&m.LineID, &m.VoucherNo, &m.AccountID, &m.DebitAmount, &m.CreditAmount,
			&m.TransactionType, &m.CostCenterID, &m.CustomerID, &m.SupplierID, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher line", err)
		}
		lines = append(lines, mapping.ToDomainVoucherLine(m))
	}
	return lines, rows.Err()
}

// ListVouchers retrieves a token-paginated page of vouchers for a company,
// newest transaction date first.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultVoucherPageSize
	}

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if params.VoucherType != "" {
		args = append(args, params.VoucherType)
		conditions = append(conditions, fmt.Sprintf("voucher_type = $%d", len(args)))
	}
	if params.PostingStatus != "" {
		args = append(args, params.PostingStatus)
		conditions = append(conditions, fmt.Sprintf("posting_status = $%d", len(args)))
	}
	if params.FiscalYear != "" {
		args = append(args, params.FiscalYear)
		conditions = append(conditions, fmt.Sprintf("fiscal_year = $%d", len(args)))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, txnDate, createdAt)
		conditions = append(conditions, fmt.Sprintf("(transaction_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM vouchers WHERE %s ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;`,
		voucherColumns, strings.Join(conditions, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher", err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to read voucher rows", err)
	}

	var nextToken *string
	if len(vouchers) > limit {
		vouchers = vouchers[:limit]
		last := vouchers[len(vouchers)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextToken = &token
	}
	return vouchers, nextToken, nil
}

const insertVoucherQuery = `
	INSERT INTO vouchers (` + voucherColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);`

func insertVoucherArgs(m models.Voucher) []interface{} {
	return []interface{}{
		m.VoucherNo, m.PostingID, m.VoucherType, m.CompanyID, m.FiscalYear,
		m.TransactionDate, m.PostingDate, m.CurrencyCode, m.ExchangeRate, m.TotalAmount,
		m.Narration, m.PostingStatus, m.RequiresApproval, m.ApprovalStatus,
		m.ApprovedBy, m.ApprovedAt, m.ApprovalComments,
		m.IsReversed, m.ReversalOfVoucherNo, m.ReversedByVoucherNo, m.ReversalReason,
		m.PaymentMethod, m.PaymentAccountID, m.BankID, m.ChequeNo, m.ChequeDate, m.PaidTo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

const insertLineQuery = `
	INSERT INTO voucher_lines (line_id, voucher_no, account_id, debit_amount, credit_amount,
	                           transaction_type, cost_center_id, customer_id, supplier_id, description,
	                           created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

func insertLineArgs(m models.VoucherLine) []interface{} {
	return []interface{}{
		m.LineID, m.VoucherNo, m.AccountID, m.DebitAmount, m.CreditAmount,
		m.TransactionType, m.CostCenterID, m.CustomerID, m.SupplierID, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveVoucher persists a new voucher with its lines and attachments in one
// transaction. The sequence assigns the voucher number.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine, attachments []domain.Attachment) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	voucherNo, err := nextVoucherNo(ctx, tx, m.CompanyID, m.VoucherType, m.FiscalYear)
	if err != nil {
		return "", err
	}
	m.VoucherNo = voucherNo

	if _, err := tx.Exec(ctx, insertVoucherQuery, insertVoucherArgs(m)...); err != nil {
		return "", translateError(err, "voucher insert failed")
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelVoucherLine(line)
		lm.VoucherNo = voucherNo
		batch.Queue(insertLineQuery, insertLineArgs(lm)...)
	}
	for _, attachment := range attachments {
		am := mapping.ToModelAttachment(attachment)
		am.VoucherNo = voucherNo
		batch.Queue(`
			INSERT INTO attachments (attachment_id, voucher_no, file_name, content_type, size_bytes,
			                         document_type, content_base64, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			am.AttachmentID, am.VoucherNo, am.FileName, am.ContentType, am.SizeBytes,
			am.DocumentType, am.ContentBase64, am.CreatedAt, am.CreatedBy, am.LastUpdatedAt, am.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return "", translateError(err, "voucher line insert failed")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return voucherNo, nil
}

// ReplaceVoucher rewrites the header and the full line set in one transaction.
func (r *PgxVoucherRepository) ReplaceVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	tag, err := tx.Exec(ctx, `
		UPDATE vouchers SET
			voucher_type = $2, transaction_date = $3, posting_date = $4, currency_code = $5,
			exchange_rate = $6, total_amount = $7, narration = $8, posting_status = $9,
			requires_approval = $10, approval_status = $11,
			payment_method = $12, payment_account_id = $13, bank_id = $14,
			cheque_no = $15, cheque_date = $16, paid_to = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE voucher_no = $1;`,
		m.VoucherNo, m.VoucherType, m.TransactionDate, m.PostingDate, m.CurrencyCode,
		m.ExchangeRate, m.TotalAmount, m.Narration, m.PostingStatus,
		m.RequiresApproval, m.ApprovalStatus,
		m.PaymentMethod, m.PaymentAccountID, m.BankID,
		m.ChequeNo, m.ChequeDate, m.PaidTo,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "voucher update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "voucher "+m.VoucherNo+" not found", apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_no = $1;`, m.VoucherNo); err != nil {
		return translateError(err, "voucher line delete failed")
	}
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelVoucherLine(line)
		lm.VoucherNo = m.VoucherNo
		batch.Queue(insertLineQuery, insertLineArgs(lm)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "voucher line insert failed")
	}

	return r.Commit(ctx, tx)
}

// UpdatePostingStatus moves a voucher to a new posting status.
func (r *PgxVoucherRepository) UpdatePostingStatus(ctx context.Context, voucherNo string, status domain.PostingStatus, updatedBy string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vouchers SET posting_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_no = $1;`,
		voucherNo, string(status), at, updatedBy)
	if err != nil {
		return translateError(err, "voucher status update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "voucher "+voucherNo+" not found", apperrors.ErrNotFound)
	}
	return nil
}

// UpdateApproval records an approval decision with the resulting posting status.
func (r *PgxVoucherRepository) UpdateApproval(ctx context.Context, voucherNo string, posting domain.PostingStatus, approval domain.ApprovalStatus, approvedBy *string, approvedAt *time.Time, comments string, updatedBy string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vouchers SET
			posting_status = $2, approval_status = $3, approved_by = $4, approved_at = $5,
			approval_comments = $6, last_updated_at = $7, last_updated_by = $8
		WHERE voucher_no = $1;`,
		voucherNo, string(posting), string(approval), approvedBy, approvedAt, comments, at, updatedBy)
	if err != nil {
		return translateError(err, "voucher approval update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "voucher "+voucherNo+" not found", apperrors.ErrNotFound)
	}
	return nil
}

// ResetApproval clears approval metadata and returns the voucher to PENDING.
func (r *PgxVoucherRepository) ResetApproval(ctx context.Context, voucherNo string, updatedBy string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vouchers SET
			posting_status = $2, approval_status = $3, approved_by = NULL, approved_at = NULL,
			approval_comments = '', last_updated_at = $4, last_updated_by = $5
		WHERE voucher_no = $1;`,
		voucherNo, string(domain.PostingPending), string(domain.ApprovalPending), at, updatedBy)
	if err != nil {
		return translateError(err, "voucher approval reset failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "voucher "+voucherNo+" not found", apperrors.ErrNotFound)
	}
	return nil
}

// SaveReversal persists the reversal voucher and flags the original in the
// same transaction, so the linkage is never half-written.
func (r *PgxVoucherRepository) SaveReversal(ctx context.Context, reversal domain.Voucher, lines []domain.VoucherLine, originalVoucherNo string) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(reversal)
	reversalNo, err := nextVoucherNo(ctx, tx, m.CompanyID, m.VoucherType, m.FiscalYear)
	if err != nil {
		return "", err
	}
	m.VoucherNo = reversalNo

	if _, err := tx.Exec(ctx, insertVoucherQuery, insertVoucherArgs(m)...); err != nil {
		return "", translateError(err, "reversal insert failed")
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelVoucherLine(line)
		lm.VoucherNo = reversalNo
		batch.Queue(insertLineQuery, insertLineArgs(lm)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return "", translateError(err, "reversal line insert failed")
	}

	// Guard against a concurrent reversal of the same voucher.
	tag, err := tx.Exec(ctx, `
		UPDATE vouchers SET
			is_reversed = TRUE, reversed_by_voucher_no = $2, reversal_reason = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE voucher_no = $1 AND is_reversed = FALSE;`,
		originalVoucherNo, reversalNo, m.ReversalReason, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return "", translateError(err, "original voucher flag update failed")
	}
	if tag.RowsAffected() == 0 {
		return "", apperrors.NewAppError(409, "voucher "+originalVoucherNo+" is already reversed", apperrors.ErrConflict)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return reversalNo, nil
}

// DeleteVoucher removes a voucher with its lines and attachments.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherNo string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM attachments WHERE voucher_no = $1;`, voucherNo); err != nil {
		return translateError(err, "attachment delete failed")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_no = $1;`, voucherNo); err != nil {
		return translateError(err, "voucher line delete failed")
	}
	tag, err := tx.Exec(ctx, `DELETE FROM vouchers WHERE voucher_no = $1;`, voucherNo)
	if err != nil {
		return translateError(err, "voucher delete failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "voucher "+voucherNo+" not found", apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}

// SaveAttachment persists a single attachment.
func (r *PgxVoucherRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	am := mapping.ToModelAttachment(attachment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO attachments (attachment_id, voucher_no, file_name, content_type, size_bytes,
		                         document_type, content_base64, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		am.AttachmentID, am.VoucherNo, am.FileName, am.ContentType, am.SizeBytes,
		am.DocumentType, am.ContentBase64, am.CreatedAt, am.CreatedBy, am.LastUpdatedAt, am.LastUpdatedBy,
	)
	return translateError(err, "attachment insert failed")
}

// FindAttachmentsByVoucherNo lists a voucher's attachments without content.
func (r *PgxVoucherRepository) FindAttachmentsByVoucherNo(ctx context.Context, voucherNo string) ([]domain.Attachment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT attachment_id, voucher_no, file_name, content_type, size_bytes, document_type,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM attachments WHERE voucher_no = $1 ORDER BY created_at;`, voucherNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments", err)
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var m models.Attachment
		if err := rows.Scan(
			&m.AttachmentID, &m.VoucherNo, &m.FileName, &m.ContentType, &m.SizeBytes, &m.DocumentType,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment", err)
		}
		attachments = append(attachments, mapping.ToDomainAttachment(m))
	}
	return attachments, rows.Err()
}

// DeleteAttachment removes a single attachment.
func (r *PgxVoucherRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM attachments WHERE attachment_id = $1;`, attachmentID)
	if err != nil {
		return translateError(err, "attachment delete failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "attachment "+attachmentID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

// RecordApprovalAction appends one row to the approval audit trail.
func (r *PgxVoucherRepository) RecordApprovalAction(ctx context.Context, entry domain.ApprovalLogEntry) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO approval_log (entry_id, voucher_no, actor_id, action, comments, acted_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		entry.EntryID, entry.VoucherNo, entry.ActorID, string(entry.Action), entry.Comments, entry.ActedAt,
	)
	return translateError(err, "approval log insert failed")
}

// ListApprovalLog returns a voucher's approval trail, oldest first.
func (r *PgxVoucherRepository) ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, voucher_no, actor_id, action, comments, acted_at
		FROM approval_log WHERE voucher_no = $1 ORDER BY acted_at;`, voucherNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query approval log", err)
	}
	defer rows.Close()

	var entries []domain.ApprovalLogEntry
	for rows.Next() {
		var e domain.ApprovalLogEntry
		var action string
		if err := rows.Scan(&e.EntryID, &e.VoucherNo, &e.ActorID, &action, &e.Comments, &e.ActedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan approval log entry", err)
		}
		e.Action = domain.ApprovalAction(action)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
