package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

type masterDataService struct {
	repo portsrepo.MasterDataRepositoryFacade
}

// NewMasterDataService creates a new master data service instance.
func NewMasterDataService(repo portsrepo.MasterDataRepositoryFacade) portssvc.MasterDataSvcFacade {
	return &masterDataService{repo: repo}
}

func audit(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

func (s *masterDataService) CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.Bank, error) {
	bank := domain.Bank{
		BankID:      uuid.NewString(),
		Name:        req.Name,
		SwiftCode:   req.SwiftCode,
		Branch:      req.Branch,
		AccountNo:   req.AccountNo,
		IsActive:    true,
		AuditFields: audit(userID, time.Now()),
	}
	if err := s.repo.SaveBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("failed to save bank: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Bank created", "bankID", bank.BankID)
	return &bank, nil
}

func (s *masterDataService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	return s.repo.FindBankByID(ctx, bankID)
}

func (s *masterDataService) ListBanks(ctx context.Context, activeOnly bool) ([]domain.Bank, error) {
	return s.repo.ListBanks(ctx, activeOnly)
}

func (s *masterDataService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*domain.Bank, error) {
	bank, err := s.repo.FindBankByID(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		bank.Name = *req.Name
	}
	if req.SwiftCode != nil {
		bank.SwiftCode = *req.SwiftCode
	}
	if req.Branch != nil {
		bank.Branch = *req.Branch
	}
	if req.AccountNo != nil {
		bank.AccountNo = *req.AccountNo
	}
	if req.IsActive != nil {
		bank.IsActive = *req.IsActive
	}
	bank.LastUpdatedAt = time.Now()
	bank.LastUpdatedBy = userID

	if err := s.repo.UpdateBank(ctx, *bank); err != nil {
		return nil, fmt.Errorf("failed to update bank: %w", err)
	}
	return bank, nil
}

func (s *masterDataService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, userID string) (*domain.Department, error) {
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Code:         strings.ToUpper(req.Code),
		Name:         req.Name,
		IsActive:     true,
		AuditFields:  audit(userID, time.Now()),
	}
	if err := s.repo.SaveDepartment(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return &department, nil
}

func (s *masterDataService) ListDepartments(ctx context.Context, activeOnly bool) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx, activeOnly)
}

func (s *masterDataService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest, userID string) (*domain.Country, error) {
	country := domain.Country{
		CountryCode: strings.ToUpper(req.CountryCode),
		Name:        req.Name,
		IsActive:    true,
		AuditFields: audit(userID, time.Now()),
	}
	if err := s.repo.SaveCountry(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to save country: %w", err)
	}
	return &country, nil
}

func (s *masterDataService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *masterDataService) CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest, userID string) (*domain.Deduction, error) {
	if req.Rate.IsNegative() {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("rate", "deduction rate must not be negative")
		return nil, verrs
	}
	deduction := domain.Deduction{
		DeductionID: uuid.NewString(),
		Name:        req.Name,
		Rate:        req.Rate,
		AccountID:   req.AccountID,
		IsActive:    true,
		AuditFields: audit(userID, time.Now()),
	}
	if err := s.repo.SaveDeduction(ctx, deduction); err != nil {
		return nil, fmt.Errorf("failed to save deduction: %w", err)
	}
	return &deduction, nil
}

func (s *masterDataService) ListDeductions(ctx context.Context, activeOnly bool) ([]domain.Deduction, error) {
	return s.repo.ListDeductions(ctx, activeOnly)
}

func (s *masterDataService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	verrs := &apperrors.ValidationErrors{}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		verrs.Add("startDate", "start date must be yyyy-mm-dd")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		verrs.Add("endDate", "end date must be yyyy-mm-dd")
	}
	if !verrs.HasErrors() && !end.After(start) {
		verrs.Add("endDate", "end date must be after start date")
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	fy := domain.FiscalYear{
		FiscalYearID: req.FiscalYearID,
		CompanyID:    req.CompanyID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsOpen:       true,
		AuditFields:  audit(userID, time.Now()),
	}
	if err := s.repo.SaveFiscalYear(ctx, fy); err != nil {
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Fiscal year opened", "fiscalYearID", fy.FiscalYearID, "companyID", fy.CompanyID)
	return &fy, nil
}

func (s *masterDataService) GetFiscalYear(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error) {
	return s.repo.FindFiscalYear(ctx, companyID, fiscalYearID)
}

func (s *masterDataService) ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error) {
	return s.repo.ListFiscalYears(ctx, companyID)
}

func (s *masterDataService) CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, userID string) error {
	fy, err := s.repo.FindFiscalYear(ctx, companyID, fiscalYearID)
	if err != nil {
		return err
	}
	if !fy.IsOpen {
		return fmt.Errorf("%w: fiscal year %s is already closed", apperrors.ErrConflict, fiscalYearID)
	}
	if err := s.repo.CloseFiscalYear(ctx, companyID, fiscalYearID, userID); err != nil {
		return fmt.Errorf("failed to close fiscal year: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Fiscal year closed", "fiscalYearID", fiscalYearID, "companyID", companyID)
	return nil
}
