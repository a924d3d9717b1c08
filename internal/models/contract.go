package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is the persistence model for a lease contract.
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
	ReceivableAccount string          `json:"receivableAccount"`
	RevenueAccount    string          `json:"revenueAccount"`
	Status            string          `json:"status"`
	TerminatedAt      *time.Time      `json:"terminatedAt,omitempty"`
	TerminationReason string          `json:"terminationReason,omitempty"`
	NextBillingDate   time.Time       `json:"nextBillingDate"`
	AuditFields
}

// LeaseInvoice is the persistence model for one billing period of a contract.
type LeaseInvoice struct {
	InvoiceID    string          `json:"invoiceID"`
	InvoiceNo    string          `json:"invoiceNo"`
	ContractID   string          `json:"contractID"`
	CompanyID    string          `json:"companyID"`
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
	VoucherNo    *string         `json:"voucherNo,omitempty"`
	AuditFields
}
