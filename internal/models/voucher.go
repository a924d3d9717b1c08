package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType distinguishes the voucher families handled by the ledger.
type VoucherType string

const (
	JournalVoucher      VoucherType = "JOURNAL"
	PaymentVoucher      VoucherType = "PAYMENT"
	LeaseRevenueVoucher VoucherType = "LEASE_REVENUE"
)

// PostingStatus is the posting state of a voucher.
type PostingStatus string

const (
	PostingDraft    PostingStatus = "DRAFT"
	PostingPending  PostingStatus = "PENDING"
	PostingPosted   PostingStatus = "POSTED"
	PostingRejected PostingStatus = "REJECTED"
)

// ApprovalStatus is the approval state of a voucher.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// TransactionType indicates whether a voucher line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Voucher is the persistence model for a voucher header.
type Voucher struct {
	VoucherNo        string          `json:"voucherNo"`
	PostingID        string          `json:"postingID"`
	VoucherType      VoucherType     `json:"voucherType"`
	CompanyID        string          `json:"companyID"`
	FiscalYear       string          `json:"fiscalYear"`
	TransactionDate  time.Time       `json:"transactionDate"`
	PostingDate      time.Time       `json:"postingDate"`
	CurrencyCode     string          `json:"currencyCode"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Narration        string          `json:"narration"`
	PostingStatus    PostingStatus   `json:"postingStatus"`
	RequiresApproval bool            `json:"requiresApproval"`
	ApprovalStatus   ApprovalStatus  `json:"approvalStatus"`
	ApprovedBy       *string         `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time      `json:"approvedAt,omitempty"`
	ApprovalComments string          `json:"approvalComments,omitempty"`

	IsReversed          bool    `json:"isReversed"`
	ReversalOfVoucherNo *string `json:"reversalOfVoucherNo,omitempty"`
	ReversedByVoucherNo *string `json:"reversedByVoucherNo,omitempty"`
	ReversalReason      string  `json:"reversalReason,omitempty"`

	PaymentMethod    *string    `json:"paymentMethod,omitempty"`
	PaymentAccountID *string    `json:"paymentAccountID,omitempty"`
	BankID           *string    `json:"bankID,omitempty"`
	ChequeNo         *string    `json:"chequeNo,omitempty"`
	ChequeDate       *time.Time `json:"chequeDate,omitempty"`
	PaidTo           string     `json:"paidTo,omitempty"`

	AuditFields
}

// VoucherLine is the persistence model for a single account movement.
type VoucherLine struct {
	LineID          string          `json:"lineID"`
	VoucherNo       string          `json:"voucherNo"`
	AccountID       string          `json:"accountID"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	TransactionType TransactionType `json:"transactionType"`
	CostCenterID    *string         `json:"costCenterID,omitempty"`
	CustomerID      *string         `json:"customerID,omitempty"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	Description     string          `json:"description,omitempty"`
	AuditFields
}

// Attachment is the persistence model for a voucher attachment.
type Attachment struct {
	AttachmentID  string `json:"attachmentID"`
	VoucherNo     string `json:"voucherNo"`
	FileName      string `json:"fileName"`
	ContentType   string `json:"contentType"`
	SizeBytes     int64  `json:"sizeBytes"`
	DocumentType  string `json:"documentType,omitempty"`
	ContentBase64 string `json:"contentBase64,omitempty"`
	AuditFields
}
