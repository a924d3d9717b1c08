package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GeneralLedgerRows returns posted account movements ordered by date then
// voucher number. Running balances are computed by the service layer.
func (r *PgxReportingRepository) GeneralLedgerRows(ctx context.Context, params dto.GeneralLedgerParams) ([]dto.GeneralLedgerRow, error) {
	conditions := []string{"v.company_id = $1", "v.posting_status = $2"}
	args := []interface{}{params.CompanyID, string(domain.PostingPosted)}

	if params.FiscalYear != "" {
		args = append(args, params.FiscalYear)
		conditions = append(conditions, fmt.Sprintf("v.fiscal_year = $%d", len(args)))
	}
	if params.AccountID != "" {
		args = append(args, params.AccountID)
		conditions = append(conditions, fmt.Sprintf("l.account_id = $%d", len(args)))
	}
	if params.FromDate != nil {
		args = append(args, *params.FromDate)
		conditions = append(conditions, fmt.Sprintf("v.transaction_date >= $%d", len(args)))
	}
	if params.ToDate != nil {
		args = append(args, *params.ToDate)
		conditions = append(conditions, fmt.Sprintf("v.transaction_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT v.voucher_no, v.voucher_type, v.transaction_date,
		       l.account_id, COALESCE(a.name, ''), l.description,
		       l.debit_amount, l.credit_amount
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_no = l.voucher_no
		LEFT JOIN accounts a ON a.account_id = l.account_id
		WHERE %s
		ORDER BY v.transaction_date, v.voucher_no, l.line_id;`,
		strings.Join(conditions, " AND "))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query general ledger rows", err)
	}
	defer rows.Close()

	var result []dto.GeneralLedgerRow
	for rows.Next() {
		var row dto.GeneralLedgerRow
		if err := rows.Scan(
			&row.VoucherNo, &row.VoucherType, &row.TransactionDate,
			&row.AccountID, &row.AccountName, &row.Description,
			&row.Debit, &row.Credit,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan general ledger row", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PgxReportingRepository) VoucherRegisterRows(ctx context.Context, companyID string, fiscalYear string) ([]dto.VoucherRegisterRow, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT voucher_no, voucher_type, transaction_date, posting_status,
		       total_amount, narration, is_reversed
		FROM vouchers
		WHERE company_id = $1 AND fiscal_year = $2
		ORDER BY transaction_date, voucher_no;`, companyID, fiscalYear)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query voucher register rows", err)
	}
	defer rows.Close()

	var result []dto.VoucherRegisterRow
	for rows.Next() {
		var row dto.VoucherRegisterRow
		if err := rows.Scan(
			&row.VoucherNo, &row.VoucherType, &row.TransactionDate, &row.PostingStatus,
			&row.TotalAmount, &row.Narration, &row.IsReversed,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher register row", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
