package pgsql

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/crestprop/lease_ledger_app/internal/models"
	"github.com/crestprop/lease_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMasterDataRepository struct {
	BaseRepository
}

func newPgxMasterDataRepository(pool *pgxpool.Pool) portsrepo.MasterDataRepositoryFacade {
	return &PgxMasterDataRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MasterDataRepositoryFacade = (*PgxMasterDataRepository)(nil)

func (r *PgxMasterDataRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO banks (bank_id, name, swift_code, branch, account_no, is_active,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.BankID, m.Name, m.SwiftCode, m.Branch, m.AccountNo, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "bank insert failed")
}

func (r *PgxMasterDataRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	var m models.Bank
	err := r.Pool.QueryRow(ctx, `
		SELECT bank_id, name, swift_code, branch, account_no, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM banks WHERE bank_id = $1;`, bankID).Scan(
		&m.BankID, &m.Name, &m.SwiftCode, &m.Branch, &m.AccountNo, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "bank "+bankID+" not found")
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

func (r *PgxMasterDataRepository) ListBanks(ctx context.Context, activeOnly bool) ([]domain.Bank, error) {
	query := `SELECT bank_id, name, swift_code, branch, account_no, is_active,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM banks WHERE ($1 = FALSE OR is_active) ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query banks", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var m models.Bank
		if err := rows.Scan(
			&m.BankID, &m.Name, &m.SwiftCode, &m.Branch, &m.AccountNo, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank", err)
		}
		banks = append(banks, mapping.ToDomainBank(m))
	}
	return banks, rows.Err()
}

func (r *PgxMasterDataRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE banks SET name = $2, swift_code = $3, branch = $4, account_no = $5,
			is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE bank_id = $1;`,
		m.BankID, m.Name, m.SwiftCode, m.Branch, m.AccountNo,
		m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "bank update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "bank "+m.BankID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMasterDataRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO departments (department_id, code, name, is_active,
		                         created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.DepartmentID, m.Code, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "department insert failed")
}

func (r *PgxMasterDataRepository) ListDepartments(ctx context.Context, activeOnly bool) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT department_id, code, name, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM departments WHERE ($1 = FALSE OR is_active) ORDER BY code;`, activeOnly)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query departments", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(
			&m.DepartmentID, &m.Code, &m.Name, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan department", err)
		}
		departments = append(departments, mapping.ToDomainDepartment(m))
	}
	return departments, rows.Err()
}

func (r *PgxMasterDataRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO countries (country_code, name, is_active,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.CountryCode, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "country insert failed")
}

func (r *PgxMasterDataRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT country_code, name, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM countries ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query countries", err)
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var m models.Country
		if err := rows.Scan(
			&m.CountryCode, &m.Name, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan country", err)
		}
		countries = append(countries, mapping.ToDomainCountry(m))
	}
	return countries, rows.Err()
}

func (r *PgxMasterDataRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	m := mapping.ToModelDeduction(deduction)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO deductions (deduction_id, name, rate, account_id, is_active,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.DeductionID, m.Name, m.Rate, m.AccountID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "deduction insert failed")
}

func (r *PgxMasterDataRepository) ListDeductions(ctx context.Context, activeOnly bool) ([]domain.Deduction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT deduction_id, name, rate, account_id, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM deductions WHERE ($1 = FALSE OR is_active) ORDER BY name;`, activeOnly)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deductions", err)
	}
	defer rows.Close()

	var deductions []domain.Deduction
	for rows.Next() {
		var m models.Deduction
		if err := rows.Scan(
			&m.DeductionID, &m.Name, &m.Rate, &m.AccountID, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan deduction", err)
		}
		deductions = append(deductions, mapping.ToDomainDeduction(m))
	}
	return deductions, rows.Err()
}

func (r *PgxMasterDataRepository) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO fiscal_years (fiscal_year_id, company_id, start_date, end_date, is_open,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.FiscalYearID, m.CompanyID, m.StartDate, m.EndDate, m.IsOpen,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "fiscal year insert failed")
}

func (r *PgxMasterDataRepository) FindFiscalYear(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error) {
	var m models.FiscalYear
	err := r.Pool.QueryRow(ctx, `
		SELECT fiscal_year_id, company_id, start_date, end_date, is_open,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years WHERE company_id = $1 AND fiscal_year_id = $2;`,
		companyID, fiscalYearID).Scan(
		&m.FiscalYearID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.IsOpen,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "fiscal year "+fiscalYearID+" not found")
	}
	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

func (r *PgxMasterDataRepository) ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT fiscal_year_id, company_id, start_date, end_date, is_open,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years WHERE company_id = $1 ORDER BY start_date DESC;`, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal years", err)
	}
	defer rows.Close()

	var years []domain.FiscalYear
	for rows.Next() {
		var m models.FiscalYear
		if err := rows.Scan(
			&m.FiscalYearID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.IsOpen,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal year", err)
		}
		years = append(years, mapping.ToDomainFiscalYear(m))
	}
	return years, rows.Err()
}

func (r *PgxMasterDataRepository) CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE fiscal_years SET is_open = FALSE, last_updated_at = NOW(), last_updated_by = $3
		WHERE company_id = $1 AND fiscal_year_id = $2;`, companyID, fiscalYearID, updatedBy)
	if err != nil {
		return translateError(err, "fiscal year close failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "fiscal year "+fiscalYearID+" not found", apperrors.ErrNotFound)
	}
	return nil
}
