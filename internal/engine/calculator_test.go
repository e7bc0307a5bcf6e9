package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlyInterest(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		rate     string
		expected string
	}{
		{"one percent per month", "1000", "12", "10"},
		{"half percent per month", "2000", "6", "10"},
		{"zero rate", "1000", "0", "0"},
		{"zero balance", "0", "12", "0"},
		{"fractional balance", "1012", "12", "10.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyInterest(dec(tt.balance), dec(tt.rate))
			assert.True(t, result.Equal(dec(tt.expected)),
				"Expected %s, but got %s", tt.expected, result)
		})
	}
}

func TestApplyMinimumPayment(t *testing.T) {
	loan := testLoan("car", 1000, 12, 1)
	loan.MinimumPayment = dec("50")

	updated, res := applyMinimumPayment(loan, dec("500"))

	assert.True(t, res.applied)
	assert.True(t, res.interest.Equal(dec("10")))
	assert.True(t, res.payment.Equal(dec("50")))
	assert.True(t, res.principal.Equal(dec("40")))
	assert.True(t, res.closing.Equal(dec("960")))
	assert.True(t, res.budget.Equal(dec("450")))
	assert.True(t, updated.Balance.Equal(dec("960")))
}

func TestApplyMinimumPayment_BudgetShortfall(t *testing.T) {
	loan := testLoan("card", 1000, 12, 1)
	loan.MinimumPayment = dec("50")

	// Budget below the contractual minimum: the loan gets what is left.
	_, res := applyMinimumPayment(loan, dec("30"))

	assert.True(t, res.applied)
	assert.True(t, res.payment.Equal(dec("30")))
	assert.True(t, res.principal.Equal(dec("20")))
	assert.True(t, res.closing.Equal(dec("980")))
	assert.True(t, res.budget.Equal(dec("0")))
}

func TestApplyMinimumPayment_BudgetBelowInterest(t *testing.T) {
	loan := testLoan("card", 1000, 12, 1)
	loan.MinimumPayment = dec("50")

	// Payment below the accrued interest grows the balance.
	_, res := applyMinimumPayment(loan, dec("4"))

	assert.True(t, res.applied)
	assert.True(t, res.payment.Equal(dec("4")))
	assert.True(t, res.principal.Equal(dec("-6")))
	assert.True(t, res.closing.Equal(dec("1006")))
}

func TestApplyMinimumPayment_FinalPaymentCapped(t *testing.T) {
	loan := testLoan("tail", 40, 12, 1)
	loan.MinimumPayment = dec("200")

	// Payment is capped at balance+interest so the loan is never overpaid.
	updated, res := applyMinimumPayment(loan, dec("500"))

	assert.True(t, res.payment.Equal(dec("40.4")))
	assert.True(t, res.principal.Equal(dec("40")))
	assert.True(t, res.closing.Equal(dec("0")))
	assert.True(t, res.budget.Equal(dec("459.6")))
	assert.True(t, updated.Balance.IsZero())
}

func TestApplyMinimumPayment_PaidOffNoOp(t *testing.T) {
	loan := testLoan("done", 0, 12, 1)

	updated, res := applyMinimumPayment(loan, dec("500"))

	assert.False(t, res.applied)
	assert.True(t, res.budget.Equal(dec("500")))
	assert.True(t, updated.Balance.IsZero())
}

func TestApplySurplusPayment(t *testing.T) {
	loan := testLoan("car", 1000, 12, 1)

	updated, res := applySurplusPayment(loan, dec("300"))

	assert.True(t, res.applied)
	assert.True(t, res.payment.Equal(dec("300")))
	assert.True(t, res.principal.Equal(dec("300")))
	assert.True(t, res.interest.Equal(decimal.Zero))
	assert.True(t, res.closing.Equal(dec("700")))
	assert.True(t, res.budget.Equal(dec("0")))
	assert.True(t, updated.Balance.Equal(dec("700")))
}

func TestApplySurplusPayment_CappedAtBalance(t *testing.T) {
	loan := testLoan("small", 120, 12, 1)

	_, res := applySurplusPayment(loan, dec("300"))

	assert.True(t, res.payment.Equal(dec("120")))
	assert.True(t, res.closing.Equal(dec("0")))
	assert.True(t, res.budget.Equal(dec("180")))
}

func TestApplySurplusPayment_NoOps(t *testing.T) {
	paidOff := testLoan("done", 0, 12, 1)
	_, res := applySurplusPayment(paidOff, dec("300"))
	assert.False(t, res.applied)
	assert.True(t, res.budget.Equal(dec("300")))

	active := testLoan("active", 100, 12, 1)
	_, res = applySurplusPayment(active, decimal.Zero)
	assert.False(t, res.applied)
	assert.True(t, res.budget.Equal(decimal.Zero))
}
