package services

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// MasterDataSvcFacade manages the small master data entities behind the
// back-office dropdowns: banks, departments, countries, deductions and
// fiscal years.
type MasterDataSvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.Bank, error)
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context, activeOnly bool) ([]domain.Bank, error)
	UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*domain.Bank, error)

	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, userID string) (*domain.Department, error)
	ListDepartments(ctx context.Context, activeOnly bool) ([]domain.Department, error)

	CreateCountry(ctx context.Context, req dto.CreateCountryRequest, userID string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)

	CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest, userID string) (*domain.Deduction, error)
	ListDeductions(ctx context.Context, activeOnly bool) ([]domain.Deduction, error)

	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error)
	GetFiscalYear(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error)
	CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, userID string) error
}
