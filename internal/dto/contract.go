package dto

import (
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest registers a new lease contract.
type CreateContractRequest struct {
	CompanyID         string          `json:"companyID" binding:"required"`
	PropertyUnit      string          `json:"propertyUnit" binding:"required"`
	TenantID          string          `json:"tenantID" binding:"required"`
	TenantName        string          `json:"tenantName" binding:"required"`
	StartDate         time.Time       `json:"startDate" binding:"required"`
	EndDate           time.Time       `json:"endDate" binding:"required"`
	MonthlyRent       decimal.Decimal `json:"monthlyRent" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"required"`
	ReceivableAccount string          `json:"receivableAccount" binding:"required"`
	RevenueAccount    string          `json:"revenueAccount" binding:"required"`
}

// UpdateContractRequest amends contract terms; nil fields are left unchanged.
type UpdateContractRequest struct {
	TenantName     *string          `json:"tenantName,omitempty"`
	EndDate        *time.Time       `json:"endDate,omitempty"`
	MonthlyRent    *decimal.Decimal `json:"monthlyRent,omitempty"`
	RevenueAccount *string          `json:"revenueAccount,omitempty"`
}

// TerminateContractRequest closes a contract with a mandatory reason.
type TerminateContractRequest struct {
	TerminationDate time.Time `json:"terminationDate" binding:"required"`
	Reason          string    `json:"reason" binding:"required"`
}

// ContractResponse is the API view of a lease contract.
type ContractResponse struct {
	ContractID        string          `json:"contractID"`
	ContractNo        string          `json:"contractNo"`
	CompanyID         string          `json:"companyID"`
	PropertyUnit      string          `json:"propertyUnit"`
	TenantID          string          `json:"tenantID"`
	TenantName        string          `json:"tenantName"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	MonthlyRent       decimal.Decimal `json:"monthlyRent"`
	CurrencyCode      string          `json:"currencyCode"`
	Status            string          `json:"status"`
	TerminatedAt      *time.Time      `json:"terminatedAt,omitempty"`
	TerminationReason string          `json:"terminationReason,omitempty"`
	NextBillingDate   time.Time       `json:"nextBillingDate"`
}

// ListContractsParams filters and paginates contract listings.
type ListContractsParams struct {
	Status    string  `form:"status"`
	TenantID  string  `form:"tenantID"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListContractsResponse is a page of contracts plus a continuation token.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// LeaseInvoiceResponse is the API view of a lease invoice.
type LeaseInvoiceResponse struct {
	InvoiceID    string          `json:"invoiceID"`
	InvoiceNo    string          `json:"invoiceNo"`
	ContractID   string          `json:"contractID"`
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
	VoucherNo    *string         `json:"voucherNo,omitempty"`
}

// GenerateInvoicesRequest triggers lease invoicing for periods due as of a date.
type GenerateInvoicesRequest struct {
	AsOf time.Time `json:"asOf"`
}

// GenerateInvoicesResponse summarizes an invoicing run; per-contract failures
// do not abort the run.
type GenerateInvoicesResponse struct {
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Failures  []string `json:"failures,omitempty"`
}

// ToContractResponse converts a domain contract to its API view.
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ContractID:        c.ContractID,
		ContractNo:        c.ContractNo,
		CompanyID:         c.CompanyID,
		PropertyUnit:      c.PropertyUnit,
		TenantID:          c.TenantID,
		TenantName:        c.TenantName,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		MonthlyRent:       c.MonthlyRent,
		CurrencyCode:      c.CurrencyCode,
		Status:            string(c.Status),
		TerminatedAt:      c.TerminatedAt,
		TerminationReason: c.TerminationReason,
		NextBillingDate:   c.NextBillingDate,
	}
}

// ToLeaseInvoiceResponse converts a domain lease invoice to its API view.
func ToLeaseInvoiceResponse(inv *domain.LeaseInvoice) LeaseInvoiceResponse {
	return LeaseInvoiceResponse{
		InvoiceID:    inv.InvoiceID,
		InvoiceNo:    inv.InvoiceNo,
		ContractID:   inv.ContractID,
		PeriodStart:  inv.PeriodStart,
		PeriodEnd:    inv.PeriodEnd,
		Amount:       inv.Amount,
		CurrencyCode: inv.CurrencyCode,
		Status:       string(inv.Status),
		VoucherNo:    inv.VoucherNo,
	}
}
