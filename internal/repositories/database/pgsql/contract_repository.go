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

const defaultContractPageSize = 50

type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

const contractColumns = `
	contract_id, contract_no, company_id, property_unit, tenant_id, tenant_name,
	start_date, end_date, monthly_rent, currency_code,
	receivable_account, revenue_account, status,
	terminated_at, termination_reason, next_billing_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanContract(row pgx.Row) (*models.Contract, error) {
	var m models.Contract
	err := row.Scan(
		&m.ContractID, &m.ContractNo, &m.CompanyID, &m.PropertyUnit, &m.TenantID, &m.TenantName,
		&m.StartDate, &m.EndDate, &m.MonthlyRent, &m.CurrencyCode,
		&m.ReceivableAccount, &m.RevenueAccount, &m.Status,
		&m.TerminatedAt, &m.TerminationReason, &m.NextBillingDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE contract_id = $1;`
	m, err := scanContract(r.Pool.QueryRow(ctx, query, contractID))
	if err != nil {
		return nil, translateError(err, "contract "+contractID+" not found")
	}
	contract := mapping.ToDomainContract(*m)
	return &contract, nil
}

func (r *PgxContractRepository) ListContracts(ctx context.Context, companyID string, params dto.ListContractsParams) ([]domain.Contract, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultContractPageSize
	}

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if params.Status != "" {
		args = append(args, params.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.TenantID != "" {
		args = append(args, params.TenantID)
		conditions = append(conditions, fmt.Sprintf("tenant_id = $%d", len(args)))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, err := pagination.DecodeDateBasedToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, createdAt)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE %s ORDER BY created_at DESC LIMIT $%d;`,
		contractColumns, strings.Join(conditions, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query contracts", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		m, err := scanContract(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan contract", err)
		}
		contracts = append(contracts, mapping.ToDomainContract(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to read contract rows", err)
	}

	var nextToken *string
	if len(contracts) > limit {
		contracts = contracts[:limit]
		token := pagination.EncodeDateBasedToken(contracts[len(contracts)-1].CreatedAt)
		nextToken = &token
	}
	return contracts, nextToken, nil
}

func (r *PgxContractRepository) ListBillableContracts(ctx context.Context, asOf time.Time) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
		WHERE status = $1 AND next_billing_date <= $2 AND end_date >= next_billing_date
		ORDER BY next_billing_date;`
	rows, err := r.Pool.Query(ctx, query, string(domain.ContractActive), asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query billable contracts", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		m, err := scanContract(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contract", err)
		}
		contracts = append(contracts, mapping.ToDomainContract(*m))
	}
	return contracts, rows.Err()
}

func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		m.ContractID, m.ContractNo, m.CompanyID, m.PropertyUnit, m.TenantID, m.TenantName,
		m.StartDate, m.EndDate, m.MonthlyRent, m.CurrencyCode,
		m.ReceivableAccount, m.RevenueAccount, m.Status,
		m.TerminatedAt, m.TerminationReason, m.NextBillingDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "contract insert failed")
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE contracts SET
			property_unit = $2, tenant_name = $3, start_date = $4, end_date = $5,
			monthly_rent = $6, currency_code = $7, receivable_account = $8, revenue_account = $9,
			status = $10, terminated_at = $11, termination_reason = $12, next_billing_date = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE contract_id = $1;`,
		m.ContractID, m.PropertyUnit, m.TenantName, m.StartDate, m.EndDate,
		m.MonthlyRent, m.CurrencyCode, m.ReceivableAccount, m.RevenueAccount,
		m.Status, m.TerminatedAt, m.TerminationReason, m.NextBillingDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "contract update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "contract "+m.ContractID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxContractRepository) AdvanceNextBillingDate(ctx context.Context, contractID string, next time.Time, updatedBy string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE contracts SET next_billing_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE contract_id = $1;`, contractID, next, at, updatedBy)
	if err != nil {
		return translateError(err, "contract billing date update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "contract "+contractID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

const leaseInvoiceColumns = `
	invoice_id, invoice_no, contract_id, company_id, period_start, period_end,
	amount, currency_code, status, voucher_no,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxContractRepository) SaveLeaseInvoice(ctx context.Context, invoice domain.LeaseInvoice) error {
	m := mapping.ToModelLeaseInvoice(invoice)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO lease_invoices (`+leaseInvoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.InvoiceID, m.InvoiceNo, m.ContractID, m.CompanyID, m.PeriodStart, m.PeriodEnd,
		m.Amount, m.CurrencyCode, m.Status, m.VoucherNo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "lease invoice insert failed")
}

func (r *PgxContractRepository) FindInvoicesByContract(ctx context.Context, contractID string) ([]domain.LeaseInvoice, error) {
	query := `SELECT ` + leaseInvoiceColumns + ` FROM lease_invoices
		WHERE contract_id = $1 ORDER BY period_start;`
	rows, err := r.Pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lease invoices", err)
	}
	defer rows.Close()

	var invoices []domain.LeaseInvoice
	for rows.Next() {
		var m models.LeaseInvoice
		if err := rows.Scan(
			&m.InvoiceID, &m.InvoiceNo, &m.ContractID, &m.CompanyID, &m.PeriodStart, &m.PeriodEnd,
			&m.Amount, &m.CurrencyCode, &m.Status, &m.VoucherNo,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan lease invoice", err)
		}
		invoices = append(invoices, mapping.ToDomainLeaseInvoice(m))
	}
	return invoices, rows.Err()
}

func (r *PgxContractRepository) LinkInvoiceVoucher(ctx context.Context, invoiceID string, voucherNo string, status domain.LeaseInvoiceStatus, updatedBy string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE lease_invoices SET voucher_no = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1;`, invoiceID, voucherNo, string(status), at, updatedBy)
	if err != nil {
		return translateError(err, "lease invoice update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "lease invoice "+invoiceID+" not found", apperrors.ErrNotFound)
	}
	return nil
}
