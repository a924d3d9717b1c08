package repositories

import (
	"context"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// ContractReader defines read operations for lease contracts.
type ContractReader interface {
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)
	ListContracts(ctx context.Context, companyID string, params dto.ListContractsParams) ([]domain.Contract, *string, error)

	// ListBillableContracts returns active contracts whose next billing date is
	// on or before asOf.
	ListBillableContracts(ctx context.Context, asOf time.Time) ([]domain.Contract, error)
}

// ContractWriter defines write operations for lease contracts.
type ContractWriter interface {
	SaveContract(ctx context.Context, contract domain.Contract) error
	UpdateContract(ctx context.Context, contract domain.Contract) error
	AdvanceNextBillingDate(ctx context.Context, contractID string, next time.Time, updatedBy string, at time.Time) error
}

// LeaseInvoiceRepository persists lease invoices.
type LeaseInvoiceRepository interface {
	SaveLeaseInvoice(ctx context.Context, invoice domain.LeaseInvoice) error
	FindInvoicesByContract(ctx context.Context, contractID string) ([]domain.LeaseInvoice, error)
	LinkInvoiceVoucher(ctx context.Context, invoiceID string, voucherNo string, status domain.LeaseInvoiceStatus, updatedBy string, at time.Time) error
}

// ContractRepositoryFacade combines contract repository interfaces.
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
	LeaseInvoiceRepository
}
