package accounting_test

import (
	"testing"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func debitLine(account string, amount float64) domain.VoucherLine {
	return domain.VoucherLine{
		AccountID:       account,
		DebitAmount:     decimal.NewFromFloat(amount),
		TransactionType: domain.Debit,
	}
}

func creditLine(account string, amount float64) domain.VoucherLine {
	return domain.VoucherLine{
		AccountID:       account,
		CreditAmount:    decimal.NewFromFloat(amount),
		TransactionType: domain.Credit,
	}
}

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.VoucherLine
		want  bool
	}{
		{
			name:  "exactly balanced",
			lines: []domain.VoucherLine{debitLine("1001", 500.00), creditLine("4001", 500.00)},
			want:  true,
		},
		{
			name:  "within one cent tolerance",
			lines: []domain.VoucherLine{debitLine("1001", 500.00), creditLine("4001", 499.99)},
			want:  true,
		},
		{
			name:  "off by more than a cent",
			lines: []domain.VoucherLine{debitLine("1001", 500.00), creditLine("4001", 499.00)},
			want:  false,
		},
		{
			name: "multi-line balanced",
			lines: []domain.VoucherLine{
				debitLine("1001", 300.00),
				debitLine("1002", 200.00),
				creditLine("4001", 450.00),
				creditLine("2200", 50.00),
			},
			want: true,
		},
		{
			name:  "single sided",
			lines: []domain.VoucherLine{debitLine("1001", 100.00)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.IsBalanced(tt.lines))
		})
	}
}

func TestVoucherAmount(t *testing.T) {
	lines := []domain.VoucherLine{
		debitLine("1001", 300.00),
		debitLine("1002", 200.00),
		creditLine("4001", 500.00),
	}
	assert.True(t, accounting.VoucherAmount(lines).Equal(decimal.NewFromFloat(500.00)))
}

func TestNegateLines(t *testing.T) {
	lines := []domain.VoucherLine{debitLine("1001", 500.00), creditLine("4001", 500.00)}

	negated := accounting.NegateLines(lines)

	assert.Len(t, negated, 2)
	assert.True(t, negated[0].CreditAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.Equal(t, domain.Credit, negated[0].TransactionType)
	assert.True(t, negated[1].DebitAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.Equal(t, domain.Debit, negated[1].TransactionType)
	assert.True(t, accounting.IsBalanced(negated))

	// Originals untouched.
	assert.True(t, lines[0].DebitAmount.Equal(decimal.NewFromFloat(500.00)))
}
