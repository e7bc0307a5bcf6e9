package engine

import (
	"fmt"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/devloperakramul/aka-loan-amortization/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// runCycle advances one simulated calendar month. The cycle targets the
// month after the oldest active loan's start date; every active loan's
// start date moves forward one month whether or not it is paid, and only
// loans landing in the target month receive payments. The returned slice is
// the next cycle's active set with paid-off loans dropped.
func runCycle(
	active []domain.Loan,
	monthlyBudget decimal.Decimal,
	desc Descriptor,
	rec *ledgerRecorder,
) ([]domain.Loan, error) {
	oldest := active[0]
	for _, loan := range active[1:] {
		if loan.StartDate.Before(oldest.StartDate) {
			oldest = loan
		}
	}
	target := oldest.StartDate.Month()%12 + 1

	advanced := make([]domain.Loan, len(active))
	for i, loan := range active {
		loan.StartDate = utils.AddMonth(loan.StartDate)
		advanced[i] = loan
	}

	due := make([]domain.Loan, 0, len(advanced))
	for _, loan := range advanced {
		if loan.StartDate.Month() == target && loan.Balance.GreaterThan(decimal.Zero) {
			due = append(due, loan)
		}
	}

	// Minimum-payment pass, strategy order, threading the shrinking budget.
	ordered, err := OrderLoans(due, desc)
	if err != nil {
		return nil, err
	}

	budget := monthlyBudget
	updated := make(map[uuid.UUID]domain.Loan, len(ordered))
	for _, loan := range ordered {
		paid, res := applyMinimumPayment(loan, budget)
		budget = res.budget
		updated[paid.ID] = paid
		if res.applied {
			rec.record(paid, domain.LedgerKindMinimum, paid.Name, res)
		}
	}

	// Surplus pass over the same due pool, re-sorted because balances
	// changed. Surplus rows carry the strategy's display name.
	pool := make([]domain.Loan, 0, len(ordered))
	for _, loan := range ordered {
		pool = append(pool, updated[loan.ID])
	}
	pool, err = OrderLoans(pool, desc)
	if err != nil {
		return nil, err
	}

	for _, loan := range pool {
		paid, res := applySurplusPayment(loan, budget)
		budget = res.budget
		updated[paid.ID] = paid
		if res.applied {
			label := fmt.Sprintf("%s: %s", desc.Strategy.DisplayName(), paid.Name)
			rec.record(paid, domain.LedgerKindSurplus, label, res)
		}
	}

	// Merge updated state back by id; paid-off loans leave the active set
	// permanently.
	next := make([]domain.Loan, 0, len(advanced))
	for _, loan := range advanced {
		if paid, ok := updated[loan.ID]; ok {
			loan = paid
		}
		if loan.Balance.GreaterThan(decimal.Zero) {
			next = append(next, loan)
		}
	}
	return next, nil
}
