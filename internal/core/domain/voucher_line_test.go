package domain_test

import (
	"testing"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucherLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.VoucherLine
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid debit line",
			line: domain.VoucherLine{
				AccountID:       "1001",
				DebitAmount:     decimal.NewFromFloat(500.00),
				TransactionType: domain.Debit,
			},
			wantErr: false,
		},
		{
			name: "valid credit line",
			line: domain.VoucherLine{
				AccountID:       "4001",
				CreditAmount:    decimal.NewFromFloat(500.00),
				TransactionType: domain.Credit,
			},
			wantErr: false,
		},
		{
			name: "both sides populated",
			line: domain.VoucherLine{
				AccountID:       "1001",
				DebitAmount:     decimal.NewFromFloat(100),
				CreditAmount:    decimal.NewFromFloat(100),
				TransactionType: domain.Debit,
			},
			wantErr: true,
			errMsg:  "both a debit and a credit",
		},
		{
			name: "neither side populated",
			line: domain.VoucherLine{
				AccountID:       "1001",
				TransactionType: domain.Debit,
			},
			wantErr: true,
			errMsg:  "positive debit or credit",
		},
		{
			name: "type disagrees with populated side",
			line: domain.VoucherLine{
				AccountID:       "1001",
				CreditAmount:    decimal.NewFromFloat(100),
				TransactionType: domain.Debit,
			},
			wantErr: true,
			errMsg:  "DEBIT requires a positive debit amount",
		},
		{
			name: "negative amount",
			line: domain.VoucherLine{
				AccountID:       "1001",
				DebitAmount:     decimal.NewFromFloat(-50),
				TransactionType: domain.Debit,
			},
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name: "missing account",
			line: domain.VoucherLine{
				DebitAmount:     decimal.NewFromFloat(50),
				TransactionType: domain.Debit,
			},
			wantErr: true,
			errMsg:  "account reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVoucherLine_Negate(t *testing.T) {
	line := domain.VoucherLine{
		AccountID:       "1001",
		DebitAmount:     decimal.NewFromFloat(500.00),
		TransactionType: domain.Debit,
		Description:     "rent receivable",
	}

	rev := line.Negate()

	assert.True(t, rev.CreditAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.True(t, rev.DebitAmount.IsZero())
	assert.Equal(t, domain.Credit, rev.TransactionType)
	assert.Equal(t, "1001", rev.AccountID)
	assert.Equal(t, "rent receivable", rev.Description)
	// Original line untouched.
	assert.True(t, line.DebitAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.Equal(t, domain.Debit, line.TransactionType)
}

func TestVoucher_StateHelpers(t *testing.T) {
	v := domain.Voucher{PostingStatus: domain.PostingDraft}
	assert.True(t, v.IsDeletable())
	assert.False(t, v.IsReversible())

	v.PostingStatus = domain.PostingPosted
	assert.False(t, v.IsDeletable())
	assert.True(t, v.IsReversible())

	v.IsReversed = true
	assert.False(t, v.IsReversible())

	v.RequiresApproval = true
	v.ApprovalStatus = domain.ApprovalApproved
	assert.True(t, v.IsApproved())
}
