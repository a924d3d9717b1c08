package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a voucher line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Opposite returns the swapped transaction type, used when building reversals.
func (t TransactionType) Opposite() TransactionType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// VoucherLine is a single account movement within a voucher. Exactly one of
// DebitAmount and CreditAmount is positive, and TransactionType must agree
// with which side is populated.
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

// Amount returns the populated side of the line.
func (l *VoucherLine) Amount() decimal.Decimal {
	if l.TransactionType == Debit {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// Negate returns a copy of the line with debit and credit swapped at the
// same magnitudes, for use in a reversal voucher.
func (l VoucherLine) Negate() VoucherLine {
	rev := l
	rev.DebitAmount, rev.CreditAmount = l.CreditAmount, l.DebitAmount
	rev.TransactionType = l.TransactionType.Opposite()
	return rev
}

// Validate checks the exactly-one-side invariant and type agreement.
func (l *VoucherLine) Validate() error {
	if l.AccountID == "" {
		return errors.New("account reference is required")
	}
	debitSet := l.DebitAmount.IsPositive()
	creditSet := l.CreditAmount.IsPositive()
	if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
		return errors.New("line amounts must not be negative")
	}
	if debitSet && creditSet {
		return errors.New("line must not carry both a debit and a credit amount")
	}
	if !debitSet && !creditSet {
		return errors.New("line must carry a positive debit or credit amount")
	}
	switch l.TransactionType {
	case Debit:
		if !debitSet {
			return errors.New("transaction type DEBIT requires a positive debit amount")
		}
	case Credit:
		if !creditSet {
			return errors.New("transaction type CREDIT requires a positive credit amount")
		}
	default:
		return errors.New("transaction type must be DEBIT or CREDIT")
	}
	return nil
}
