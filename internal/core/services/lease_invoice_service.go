package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

type leaseInvoiceService struct {
	contractRepo portsrepo.ContractRepositoryFacade
	voucherSvc   portssvc.VoucherSvcFacade
}

// NewLeaseInvoiceService creates a new lease invoice service instance.
func NewLeaseInvoiceService(contractRepo portsrepo.ContractRepositoryFacade, voucherSvc portssvc.VoucherSvcFacade) portssvc.LeaseInvoiceSvcFacade {
	return &leaseInvoiceService{contractRepo: contractRepo, voucherSvc: voucherSvc}
}

// GenerateDueInvoices invoices every billable contract as of the given date.
// Each invoice posts a balanced lease revenue voucher that debits the
// contract's receivable account and credits its revenue account. A failure
// on one contract is recorded and the run continues.
func (s *leaseInvoiceService) GenerateDueInvoices(ctx context.Context, asOf time.Time, actorUserID string) (*dto.GenerateInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	contracts, err := s.contractRepo.ListBillableContracts(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list billable contracts: %w", err)
	}

	resp := &dto.GenerateInvoicesResponse{}
	for i := range contracts {
		contract := &contracts[i]
		if !contract.IsBillable(asOf) {
			resp.Skipped++
			continue
		}
		if err := s.invoiceContract(ctx, contract, actorUserID); err != nil {
			logger.Error("Failed to invoice contract", "contractNo", contract.ContractNo, "error", err)
			resp.Failures = append(resp.Failures, fmt.Sprintf("%s: %v", contract.ContractNo, err))
			continue
		}
		resp.Generated++
	}

	logger.Info("Invoicing run finished", "generated", resp.Generated, "skipped", resp.Skipped, "failed", len(resp.Failures))
	return resp, nil
}

func (s *leaseInvoiceService) invoiceContract(ctx context.Context, contract *domain.Contract, actorUserID string) error {
	periodStart := contract.NextBillingDate
	periodEnd := periodStart.AddDate(0, 1, 0).AddDate(0, 0, -1)
	now := time.Now()

	invoice := domain.LeaseInvoice{
		InvoiceID:    uuid.NewString(),
		InvoiceNo:    fmt.Sprintf("INV-%s-%s", contract.ContractNo, periodStart.Format("200601")),
		ContractID:   contract.ContractID,
		CompanyID:    contract.CompanyID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Amount:       contract.MonthlyRent,
		CurrencyCode: contract.CurrencyCode,
		Status:       domain.InvoiceIssued,
		AuditFields:  audit(actorUserID, now),
	}
	if err := s.contractRepo.SaveLeaseInvoice(ctx, invoice); err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	voucherReq := dto.CreateVoucherRequest{
		VoucherType:     string(domain.LeaseRevenueVoucher),
		CompanyID:       contract.CompanyID,
		FiscalYear:      periodStart.Format("2006"),
		TransactionDate: periodStart,
		CurrencyCode:    contract.CurrencyCode,
		Narration:       fmt.Sprintf("Lease revenue %s, unit %s, period %s", invoice.InvoiceNo, contract.PropertyUnit, periodStart.Format("2006-01")),
		Lines: []dto.CreateVoucherLineRequest{
			{
				AccountID:       contract.ReceivableAccount,
				DebitAmount:     contract.MonthlyRent,
				TransactionType: string(domain.Debit),
				CustomerID:      &contract.TenantID,
				Description:     fmt.Sprintf("Rent receivable %s", invoice.InvoiceNo),
			},
			{
				AccountID:       contract.RevenueAccount,
				CreditAmount:    contract.MonthlyRent,
				TransactionType: string(domain.Credit),
				Description:     fmt.Sprintf("Rent revenue %s", invoice.InvoiceNo),
			},
		},
	}

	result, err := s.voucherSvc.Create(ctx, voucherReq, actorUserID)
	if err != nil {
		return fmt.Errorf("failed to create lease revenue voucher: %w", err)
	}
	// Lease revenue vouchers skip the approval queue; submitting posts them.
	if err := s.voucherSvc.SubmitForApproval(ctx, result.VoucherNo, actorUserID); err != nil {
		return fmt.Errorf("failed to post lease revenue voucher %s: %w", result.VoucherNo, err)
	}

	if err := s.contractRepo.LinkInvoiceVoucher(ctx, invoice.InvoiceID, result.VoucherNo, domain.InvoicePosted, actorUserID, now); err != nil {
		return fmt.Errorf("failed to link invoice to voucher %s: %w", result.VoucherNo, err)
	}
	if err := s.contractRepo.AdvanceNextBillingDate(ctx, contract.ContractID, periodStart.AddDate(0, 1, 0), actorUserID, now); err != nil {
		return fmt.Errorf("failed to advance billing date: %w", err)
	}
	return nil
}

func (s *leaseInvoiceService) ListInvoicesByContract(ctx context.Context, contractID string) ([]domain.LeaseInvoice, error) {
	return s.contractRepo.FindInvoicesByContract(ctx, contractID)
}
