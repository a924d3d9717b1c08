package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is the lifecycle state of a lease contract.
type ContractStatus string

const (
	ContractActive     ContractStatus = "ACTIVE"
	ContractTerminated ContractStatus = "TERMINATED"
	ContractExpired    ContractStatus = "EXPIRED"
)

// Contract is a lease agreement for a property unit. Termination keeps the
// record with a date and reason; contracts are never deleted.
type Contract struct {
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
	ReceivableAccount string          `json:"receivableAccount"` // debited on invoicing
	RevenueAccount    string          `json:"revenueAccount"`    // credited on invoicing
	Status            ContractStatus  `json:"status"`
	TerminatedAt      *time.Time      `json:"terminatedAt,omitempty"`
	TerminationReason string          `json:"terminationReason,omitempty"`
	NextBillingDate   time.Time       `json:"nextBillingDate"`
	AuditFields
}

// IsBillable reports whether the contract should be invoiced as of the given date.
func (c *Contract) IsBillable(asOf time.Time) bool {
	return c.Status == ContractActive && !c.NextBillingDate.After(asOf)
}

// LeaseInvoiceStatus is the state of a lease invoice.
type LeaseInvoiceStatus string

const (
	InvoiceIssued LeaseInvoiceStatus = "ISSUED"
	InvoicePosted LeaseInvoiceStatus = "POSTED"
	InvoiceVoided LeaseInvoiceStatus = "VOIDED"
)

// LeaseInvoice is one billing period of a contract. Posting it creates a
// balanced lease revenue voucher through the ledger gateway.
type LeaseInvoice struct {
	InvoiceID    string             `json:"invoiceID"`
	InvoiceNo    string             `json:"invoiceNo"`
	ContractID   string             `json:"contractID"`
	CompanyID    string             `json:"companyID"`
	PeriodStart  time.Time          `json:"periodStart"`
	PeriodEnd    time.Time          `json:"periodEnd"`
	Amount       decimal.Decimal    `json:"amount"`
	CurrencyCode string             `json:"currencyCode"`
	Status       LeaseInvoiceStatus `json:"status"`
	VoucherNo    *string            `json:"voucherNo,omitempty"` // lease revenue voucher once posted
	AuditFields
}
