package engine

import (
	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/shopspring/decimal"
)

// Annual percentage rate to monthly fractional rate: rate / 12 / 100.
var rateDivisor = decimal.NewFromInt(1200)

// MonthlyInterest returns one month of interest accrued on a balance at the
// given annual percentage rate.
func MonthlyInterest(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	return balance.Mul(annualRatePercent).Div(rateDivisor)
}

// paymentResult captures one payment application against a single loan.
// applied is false for the no-op guards; no ledger row is recorded then.
type paymentResult struct {
	applied   bool
	opening   decimal.Decimal
	interest  decimal.Decimal
	principal decimal.Decimal
	payment   decimal.Decimal
	closing   decimal.Decimal
	budget    decimal.Decimal
}

// applyMinimumPayment applies one contractual minimum payment. The payment
// is capped by the remaining budget and by balance+interest so a loan is
// never overpaid; a payment below interest is a recorded shortfall, not an
// error. Paid-off loans pass through untouched.
func applyMinimumPayment(loan domain.Loan, budget decimal.Decimal) (domain.Loan, paymentResult) {
	if loan.Balance.LessThanOrEqual(decimal.Zero) {
		return loan, paymentResult{budget: budget}
	}

	opening := loan.Balance
	interest := MonthlyInterest(opening, loan.AnnualRate)
	payment := decimal.Min(budget, loan.MinimumPayment, opening.Add(interest))
	principal := payment.Sub(interest)

	closing := opening.Sub(principal)
	if closing.IsNegative() {
		closing = decimal.Zero
	}
	loan.Balance = closing

	return loan, paymentResult{
		applied:   true,
		opening:   opening,
		interest:  interest,
		principal: principal,
		payment:   payment,
		closing:   closing,
		budget:    budget.Sub(payment),
	}
}

// applySurplusPayment applies extra-pay budget as pure principal reduction;
// surplus carries no interest component. No-op when the loan is paid off or
// the budget is exhausted.
func applySurplusPayment(loan domain.Loan, budget decimal.Decimal) (domain.Loan, paymentResult) {
	if loan.Balance.LessThanOrEqual(decimal.Zero) || budget.LessThanOrEqual(decimal.Zero) {
		return loan, paymentResult{budget: budget}
	}

	opening := loan.Balance
	payment := decimal.Min(budget, opening)
	closing := opening.Sub(payment)
	loan.Balance = closing

	return loan, paymentResult{
		applied:   true,
		opening:   opening,
		principal: payment,
		payment:   payment,
		closing:   closing,
		budget:    budget.Sub(payment),
	}
}
