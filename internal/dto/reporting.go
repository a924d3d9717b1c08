package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerParams scopes a general ledger report.
type GeneralLedgerParams struct {
	CompanyID  string     `form:"companyID" binding:"required"`
	FiscalYear string     `form:"fiscalYear"`
	AccountID  string     `form:"accountID"`
	FromDate   *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"toDate" time_format:"2006-01-02"`
}

// GeneralLedgerRow is one posted movement in the general ledger report.
type GeneralLedgerRow struct {
	VoucherNo       string          `json:"voucherNo"`
	VoucherType     string          `json:"voucherType"`
	TransactionDate time.Time       `json:"transactionDate"`
	AccountID       string          `json:"accountID"`
	AccountName     string          `json:"accountName"`
	Description     string          `json:"description"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerReport is the full report with side totals.
type GeneralLedgerReport struct {
	Rows         []GeneralLedgerRow `json:"rows"`
	TotalDebits  decimal.Decimal    `json:"totalDebits"`
	TotalCredits decimal.Decimal    `json:"totalCredits"`
}

// VoucherRegisterRow is one voucher header in the register report.
type VoucherRegisterRow struct {
	VoucherNo       string          `json:"voucherNo"`
	VoucherType     string          `json:"voucherType"`
	TransactionDate time.Time       `json:"transactionDate"`
	PostingStatus   string          `json:"postingStatus"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Narration       string          `json:"narration"`
	IsReversed      bool            `json:"isReversed"`
}
