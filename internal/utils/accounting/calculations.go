package accounting

import (
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the absolute tolerance within which the debit and
// credit totals of a voucher must agree.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumSides returns the debit and credit totals of a line set.
func SumSides(lines []domain.VoucherLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}
	return debits, credits
}

// IsBalanced reports whether debits and credits agree within BalanceTolerance.
func IsBalanced(lines []domain.VoucherLine) bool {
	debits, credits := SumSides(lines)
	return debits.Sub(credits).Abs().LessThanOrEqual(BalanceTolerance)
}

// VoucherAmount computes the economic value of a balanced voucher: the sum of
// its debit side, which equals the credit side within tolerance.
func VoucherAmount(lines []domain.VoucherLine) decimal.Decimal {
	debits, _ := SumSides(lines)
	return debits
}

// NegateLines returns the exact debit/credit swap of a line set, preserving
// order, for building a reversal voucher.
func NegateLines(lines []domain.VoucherLine) []domain.VoucherLine {
	negated := make([]domain.VoucherLine, len(lines))
	for i, line := range lines {
		negated[i] = line.Negate()
	}
	return negated
}
