package domain

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

// ApprovalStatus is the approval state of a voucher that requires approval.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// PaymentMethod is how a payment voucher settles.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCheque   PaymentMethod = "CHEQUE"
	PaymentTransfer PaymentMethod = "BANK_TRANSFER"
)

// RequiresBankDetails reports whether the method needs a bank plus cheque
// number and date on the voucher header.
func (m PaymentMethod) RequiresBankDetails() bool {
	return m == PaymentCheque || m == PaymentTransfer
}

// Voucher is a transaction header. The voucher number is unique per
// company and fiscal year and is assigned by the ledger store on create.
type Voucher struct {
	VoucherNo        string          `json:"voucherNo"`
	PostingID        string          `json:"postingID"` // store-assigned posting identifier (UUID)
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

	// Reversal linkage. A reversal voucher points back at its original via
	// ReversalOfVoucherNo; the original records the counter-entry in
	// ReversedByVoucherNo and carries IsReversed=true.
	IsReversed          bool    `json:"isReversed"`
	ReversalOfVoucherNo *string `json:"reversalOfVoucherNo,omitempty"`
	ReversedByVoucherNo *string `json:"reversedByVoucherNo,omitempty"`
	ReversalReason      string  `json:"reversalReason,omitempty"`

	// Payment voucher fields; nil/empty for journal and lease revenue vouchers.
	PaymentMethod    *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentAccountID *string        `json:"paymentAccountID,omitempty"`
	BankID           *string        `json:"bankID,omitempty"`
	ChequeNo         *string        `json:"chequeNo,omitempty"`
	ChequeDate       *time.Time     `json:"chequeDate,omitempty"`
	PaidTo           string         `json:"paidTo,omitempty"`

	Lines []VoucherLine `json:"lines,omitempty"`
	AuditFields
}

// IsDeletable reports whether the posting state still allows deletion.
func (v *Voucher) IsDeletable() bool {
	return v.PostingStatus == PostingDraft || v.PostingStatus == PostingPending
}

// IsApproved reports whether the voucher has passed the approval gate.
func (v *Voucher) IsApproved() bool {
	return v.RequiresApproval && v.ApprovalStatus == ApprovalApproved
}

// IsReversible reports whether the voucher can still be reversed.
func (v *Voucher) IsReversible() bool {
	return v.PostingStatus == PostingPosted && !v.IsReversed
}

// ApprovalAction is a recorded step in a voucher's approval history.
type ApprovalAction string

const (
	ActionSubmit  ApprovalAction = "SUBMIT"
	ActionApprove ApprovalAction = "APPROVE"
	ActionReject  ApprovalAction = "REJECT"
	ActionReset   ApprovalAction = "RESET"
	ActionReverse ApprovalAction = "REVERSE"
)

// ApprovalLogEntry is one row of a voucher's approval audit trail.
type ApprovalLogEntry struct {
	EntryID   string         `json:"entryID"`
	VoucherNo string         `json:"voucherNo"`
	ActorID   string         `json:"actorID"`
	Action    ApprovalAction `json:"action"`
	Comments  string         `json:"comments,omitempty"`
	ActedAt   time.Time      `json:"actedAt"`
}
