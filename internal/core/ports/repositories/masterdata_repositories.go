package repositories

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
)

// BankRepository persists bank master records.
type BankRepository interface {
	SaveBank(ctx context.Context, bank domain.Bank) error
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context, activeOnly bool) ([]domain.Bank, error)
	UpdateBank(ctx context.Context, bank domain.Bank) error
}

// DepartmentRepository persists department master records.
type DepartmentRepository interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	ListDepartments(ctx context.Context, activeOnly bool) ([]domain.Department, error)
}

// CountryRepository persists country master records.
type CountryRepository interface {
	SaveCountry(ctx context.Context, country domain.Country) error
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// DeductionRepository persists deduction master records.
type DeductionRepository interface {
	SaveDeduction(ctx context.Context, deduction domain.Deduction) error
	ListDeductions(ctx context.Context, activeOnly bool) ([]domain.Deduction, error)
}

// FiscalYearRepository persists fiscal years.
type FiscalYearRepository interface {
	SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error
	FindFiscalYear(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error)
	CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, updatedBy string) error
}

// MasterDataRepositoryFacade combines master data repository interfaces.
type MasterDataRepositoryFacade interface {
	BankRepository
	DepartmentRepository
	CountryRepository
	DeductionRepository
	FiscalYearRepository
}
