package services

import (
	"context"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// ContractSvcFacade manages lease contracts and terminations.
type ContractSvcFacade interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest, userID string) (*domain.Contract, error)
	GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error)
	ListContracts(ctx context.Context, companyID string, params dto.ListContractsParams) (*dto.ListContractsResponse, error)
	UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, userID string) (*domain.Contract, error)
	TerminateContract(ctx context.Context, contractID string, req dto.TerminateContractRequest, userID string) error
}

// LeaseInvoiceSvcFacade generates and posts lease revenue invoices.
type LeaseInvoiceSvcFacade interface {
	// GenerateDueInvoices invoices every billable contract as of the given
	// date, posting a lease revenue voucher per invoice. Per-contract failures
	// are collected, not fatal.
	GenerateDueInvoices(ctx context.Context, asOf time.Time, actorUserID string) (*dto.GenerateInvoicesResponse, error)

	ListInvoicesByContract(ctx context.Context, contractID string) ([]domain.LeaseInvoice, error)
}
