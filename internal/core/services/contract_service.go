package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

type contractService struct {
	contractRepo portsrepo.ContractRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewContractService creates a new contract service instance.
func NewContractService(contractRepo portsrepo.ContractRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ContractSvcFacade {
	return &contractService{contractRepo: contractRepo, accountRepo: accountRepo}
}

// CreateContract registers a lease contract. Billing starts at the contract
// start date.
func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, userID string) (*domain.Contract, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	verrs := &apperrors.ValidationErrors{}
	if !req.EndDate.After(req.StartDate) {
		verrs.Add("endDate", "end date must be after start date")
	}
	if !req.MonthlyRent.IsPositive() {
		verrs.Add("monthlyRent", "monthly rent must be positive")
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.ReceivableAccount, req.RevenueAccount})
	if err != nil {
		return nil, fmt.Errorf("failed to verify contract accounts: %w", err)
	}
	if _, ok := accounts[req.ReceivableAccount]; !ok {
		verrs.Add("receivableAccount", fmt.Sprintf("account %s does not exist", req.ReceivableAccount))
	}
	if _, ok := accounts[req.RevenueAccount]; !ok {
		verrs.Add("revenueAccount", fmt.Sprintf("account %s does not exist", req.RevenueAccount))
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	now := time.Now()
	contract := domain.Contract{
		ContractID:        uuid.NewString(),
		ContractNo:        fmt.Sprintf("LC-%s-%s", req.StartDate.Format("2006"), uuid.NewString()[:8]),
		CompanyID:         req.CompanyID,
		PropertyUnit:      req.PropertyUnit,
		TenantID:          req.TenantID,
		TenantName:        req.TenantName,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		MonthlyRent:       req.MonthlyRent,
		CurrencyCode:      req.CurrencyCode,
		ReceivableAccount: req.ReceivableAccount,
		RevenueAccount:    req.RevenueAccount,
		Status:            domain.ContractActive,
		NextBillingDate:   req.StartDate,
		AuditFields:       audit(userID, now),
	}

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		logger.Error("Failed to save contract", "error", err)
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	logger.Info("Contract created", "contractID", contract.ContractID, "contractNo", contract.ContractNo)
	return &contract, nil
}

func (s *contractService) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	return s.contractRepo.FindContractByID(ctx, contractID)
}

func (s *contractService) ListContracts(ctx context.Context, companyID string, params dto.ListContractsParams) (*dto.ListContractsResponse, error) {
	contracts, nextToken, err := s.contractRepo.ListContracts(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListContractsResponse{
		Contracts: make([]dto.ContractResponse, 0, len(contracts)),
		NextToken: nextToken,
	}
	for i := range contracts {
		resp.Contracts = append(resp.Contracts, dto.ToContractResponse(&contracts[i]))
	}
	return resp, nil
}

// UpdateContract amends contract terms. Terminated contracts are frozen.
func (s *contractService) UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, userID string) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status == domain.ContractTerminated {
		return nil, fmt.Errorf("%w: contract %s is terminated and cannot be modified", apperrors.ErrProtected, contractID)
	}

	if req.TenantName != nil {
		contract.TenantName = *req.TenantName
	}
	if req.EndDate != nil {
		if !req.EndDate.After(contract.StartDate) {
			verrs := &apperrors.ValidationErrors{}
			verrs.Add("endDate", "end date must be after start date")
			return nil, verrs
		}
		contract.EndDate = *req.EndDate
	}
	if req.MonthlyRent != nil {
		if !req.MonthlyRent.IsPositive() {
			verrs := &apperrors.ValidationErrors{}
			verrs.Add("monthlyRent", "monthly rent must be positive")
			return nil, verrs
		}
		contract.MonthlyRent = *req.MonthlyRent
	}
	if req.RevenueAccount != nil {
		contract.RevenueAccount = *req.RevenueAccount
	}
	contract.LastUpdatedAt = time.Now()
	contract.LastUpdatedBy = userID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}
	return contract, nil
}

// TerminateContract closes a contract. The record survives with the
// termination date and reason; billing stops from the termination date.
func (s *contractService) TerminateContract(ctx context.Context, contractID string, req dto.TerminateContractRequest, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return err
	}
	if contract.Status == domain.ContractTerminated {
		return fmt.Errorf("%w: contract %s is already terminated", apperrors.ErrConflict, contractID)
	}
	if req.TerminationDate.Before(contract.StartDate) {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("terminationDate", "termination date must not precede the contract start date")
		return verrs
	}

	terminatedAt := req.TerminationDate
	contract.Status = domain.ContractTerminated
	contract.TerminatedAt = &terminatedAt
	contract.TerminationReason = req.Reason
	contract.LastUpdatedAt = time.Now()
	contract.LastUpdatedBy = userID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		return fmt.Errorf("failed to terminate contract: %w", err)
	}
	logger.Info("Contract terminated", "contractID", contractID, "reason", req.Reason)
	return nil
}
