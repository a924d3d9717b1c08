package dto

import (
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherLineRequest is one proposed account movement.
type CreateVoucherLineRequest struct {
	AccountID       string          `json:"accountID" binding:"required"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	CostCenterID    *string         `json:"costCenterID,omitempty"`
	CustomerID      *string         `json:"customerID,omitempty"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// AttachmentRequest carries an already-encoded attachment in a voucher payload.
type AttachmentRequest struct {
	FileName      string `json:"fileName" binding:"required"`
	ContentType   string `json:"contentType"`
	SizeBytes     int64  `json:"sizeBytes"`
	DocumentType  string `json:"documentType,omitempty"`
	ContentBase64 string `json:"contentBase64" binding:"required"`
}

// CreateVoucherRequest is a proposed voucher draft. The ledger store assigns
// the voucher number on success.
type CreateVoucherRequest struct {
	VoucherType      string                     `json:"voucherType" binding:"required,oneof=JOURNAL PAYMENT LEASE_REVENUE"`
	CompanyID        string                     `json:"companyID"`
	FiscalYear       string                     `json:"fiscalYear"`
	TransactionDate  time.Time                  `json:"transactionDate"`
	PostingDate      *time.Time                 `json:"postingDate,omitempty"`
	CurrencyCode     string                     `json:"currencyCode"`
	ExchangeRate     decimal.Decimal            `json:"exchangeRate"`
	Narration        string                     `json:"narration"`
	RequiresApproval bool                       `json:"requiresApproval"`
	PaymentMethod    *string                    `json:"paymentMethod,omitempty"`
	PaymentAccountID *string                    `json:"paymentAccountID,omitempty"`
	BankID           *string                    `json:"bankID,omitempty"`
	ChequeNo         *string                    `json:"chequeNo,omitempty"`
	ChequeDate       *time.Time                 `json:"chequeDate,omitempty"`
	PaidTo           string                     `json:"paidTo,omitempty"`
	Lines            []CreateVoucherLineRequest `json:"lines" binding:"required"`
	Attachments      []AttachmentRequest        `json:"attachments,omitempty"`
}

// UpdateVoucherRequest carries a full replacement draft for an existing voucher.
type UpdateVoucherRequest = CreateVoucherRequest

// VoucherResult is the outcome of a successful create/update submission.
type VoucherResult struct {
	VoucherNo string `json:"voucherNo"`
	PostingID string `json:"postingID"`
}

// ReverseVoucherRequest asks for a linked counter-entry. Reason is mandatory.
type ReverseVoucherRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReverseVoucherResult reports the new reversal voucher.
type ReverseVoucherResult struct {
	ReversalVoucherNo string `json:"reversalVoucherNo"`
}

// ApprovalActionRequest approves or rejects a pending voucher.
type ApprovalActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=APPROVE REJECT"`
	Comments string `json:"comments,omitempty"`
}

// BulkApprovalRequest acts on several vouchers; each item succeeds or fails
// on its own, there is no rollback across items.
type BulkApprovalRequest struct {
	VoucherNos []string `json:"voucherNos" binding:"required,min=1"`
	Action     string   `json:"action" binding:"required,oneof=APPROVE REJECT"`
	Comments   string   `json:"comments,omitempty"`
}

// BulkApprovalItemResult is the per-voucher outcome of a bulk action.
type BulkApprovalItemResult struct {
	VoucherNo string `json:"voucherNo"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// BulkApprovalResponse summarizes a bulk approval run.
type BulkApprovalResponse struct {
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
	Results   []BulkApprovalItemResult `json:"results"`
}

// ValidateVoucherResponse reports every violation found in a draft.
type ValidateVoucherResponse struct {
	IsValid bool                  `json:"isValid"`
	Errors  []ValidationErrorItem `json:"errors"`
}

// ValidationErrorItem is one field-level violation.
type ValidationErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// VoucherLineResponse is the API view of a voucher line.
type VoucherLineResponse struct {
	LineID          string          `json:"lineID"`
	AccountID       string          `json:"accountID"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description,omitempty"`
}

// VoucherResponse is the API view of a voucher header.
type VoucherResponse struct {
	VoucherNo        string                `json:"voucherNo"`
	PostingID        string                `json:"postingID"`
	VoucherType      string                `json:"voucherType"`
	CompanyID        string                `json:"companyID"`
	FiscalYear       string                `json:"fiscalYear"`
	TransactionDate  time.Time             `json:"transactionDate"`
	PostingDate      time.Time             `json:"postingDate"`
	CurrencyCode     string                `json:"currencyCode"`
	TotalAmount      decimal.Decimal       `json:"totalAmount"`
	Narration        string                `json:"narration"`
	PostingStatus    string                `json:"postingStatus"`
	ApprovalStatus   string                `json:"approvalStatus,omitempty"`
	IsReversed       bool                  `json:"isReversed"`
	ReversalOf       *string               `json:"reversalOfVoucherNo,omitempty"`
	ReversedBy       *string               `json:"reversedByVoucherNo,omitempty"`
	Lines            []VoucherLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedBy        string                `json:"createdBy"`
}

// ListVouchersParams filters and paginates voucher listings.
type ListVouchersParams struct {
	VoucherType   string  `form:"voucherType"`
	PostingStatus string  `form:"postingStatus"`
	FiscalYear    string  `form:"fiscalYear"`
	Limit         int     `form:"limit"`
	NextToken     *string `form:"nextToken"`
	IncludeLines  bool    `form:"includeLines"`
}

// ListVouchersResponse is a page of vouchers plus a continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherLineResponse converts a domain line to its API view.
func ToVoucherLineResponse(l *domain.VoucherLine) VoucherLineResponse {
	return VoucherLineResponse{
		LineID:          l.LineID,
		AccountID:       l.AccountID,
		DebitAmount:     l.DebitAmount,
		CreditAmount:    l.CreditAmount,
		TransactionType: string(l.TransactionType),
		Description:     l.Description,
	}
}

// ToVoucherResponse converts a domain voucher to its API view.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherNo:       v.VoucherNo,
		PostingID:       v.PostingID,
		VoucherType:     string(v.VoucherType),
		CompanyID:       v.CompanyID,
		FiscalYear:      v.FiscalYear,
		TransactionDate: v.TransactionDate,
		PostingDate:     v.PostingDate,
		CurrencyCode:    v.CurrencyCode,
		TotalAmount:     v.TotalAmount,
		Narration:       v.Narration,
		PostingStatus:   string(v.PostingStatus),
		IsReversed:      v.IsReversed,
		ReversalOf:      v.ReversalOfVoucherNo,
		ReversedBy:      v.ReversedByVoucherNo,
		CreatedAt:       v.CreatedAt,
		CreatedBy:       v.CreatedBy,
	}
	if v.RequiresApproval {
		resp.ApprovalStatus = string(v.ApprovalStatus)
	}
	if len(v.Lines) > 0 {
		resp.Lines = make([]VoucherLineResponse, len(v.Lines))
		for i := range v.Lines {
			resp.Lines[i] = ToVoucherLineResponse(&v.Lines[i])
		}
	}
	return resp
}
