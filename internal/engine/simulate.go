// Package engine computes month-by-month payoff schedules for a set of
// concurrent loans against a fixed recurring budget. Each cycle pays the
// contractual minimums of the loans due that month in strategy order, then
// allocates whatever budget remains as extra principal, again in strategy
// order. The engine is a pure function of its inputs: it clones the loan
// set at the boundary and never touches caller state.
package engine

import (
	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMaxCycles bounds simulations whose minimum payments never cover
// accruing interest and would otherwise loop forever.
const DefaultMaxCycles = 10000

// Result is a completed simulation: the date-sorted ledger plus
// termination facts. NonConverged is set when the cycle cap was reached
// with balance still outstanding; the partial ledger is still usable.
type Result struct {
	Entries      []domain.LedgerEntry
	Cycles       int
	NonConverged bool
}

// Simulator runs payoff simulations. Zero-configuration callers should use
// NewSimulator(0) for the default cycle cap.
type Simulator struct {
	maxCycles int
}

func NewSimulator(maxCycles int) *Simulator {
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	return &Simulator{maxCycles: maxCycles}
}

// Simulate computes the full payoff schedule for loans under monthlyBudget
// and the given strategy. Configuration errors (unknown strategy, missing
// manual sort key) fail before any cycle runs; non-convergence is reported
// on the Result, never as an error.
func (s *Simulator) Simulate(loans []domain.Loan, monthlyBudget decimal.Decimal, desc Descriptor) (*Result, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	if len(loans) == 0 {
		return &Result{Entries: []domain.LedgerEntry{}}, nil
	}

	// Private working copy; the caller's slice is never mutated. Loans
	// already paid off never enter a cycle.
	rec := newLedgerRecorder()
	active := make([]domain.Loan, 0, len(loans))
	for _, loan := range loans {
		rec.recordOpening(loan)
		if loan.Balance.GreaterThan(decimal.Zero) {
			active = append(active, loan)
		}
	}

	cycles := 0
	for len(active) > 0 && cycles < s.maxCycles {
		next, err := runCycle(active, monthlyBudget, desc, rec)
		if err != nil {
			return nil, err
		}
		active = next
		cycles++
	}

	return &Result{
		Entries:      rec.finalize(),
		Cycles:       cycles,
		NonConverged: len(active) > 0,
	}, nil
}
