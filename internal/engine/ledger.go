package engine

import (
	"fmt"
	"sort"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/shopspring/decimal"
)

// Residue below this is treated as zero in the running-balance pass.
var runningBalanceEpsilon = decimal.RequireFromString("0.1")

// ledgerRecorder accumulates ledger rows during a simulation and derives
// the running remaining balance across all loans in a final pass.
type ledgerRecorder struct {
	entries []domain.LedgerEntry
}

func newLedgerRecorder() *ledgerRecorder {
	return &ledgerRecorder{entries: []domain.LedgerEntry{}}
}

// recordOpening seeds the ledger with one row per input loan. The negative
// principal seeds the running balance with the amount owed.
func (r *ledgerRecorder) recordOpening(loan domain.Loan) {
	r.entries = append(r.entries, domain.LedgerEntry{
		LoanID:           loan.ID,
		Label:            fmt.Sprintf("New Loan: %s Start", loan.Name),
		Kind:             domain.LedgerKindOpening,
		Date:             loan.StartDate,
		OpeningBalance:   loan.Balance,
		PrincipalApplied: loan.Balance.Neg(),
		ClosingBalance:   loan.Balance,
	})
}

// record appends one payment-application row. The loan carries its
// post-payment state; the cycle date is the loan's advanced start date.
func (r *ledgerRecorder) record(loan domain.Loan, kind, label string, res paymentResult) {
	r.entries = append(r.entries, domain.LedgerEntry{
		LoanID:           loan.ID,
		Label:            label,
		Kind:             kind,
		Date:             loan.StartDate,
		OpeningBalance:   res.opening,
		InterestAccrued:  res.interest,
		PrincipalApplied: res.principal,
		Payment:          res.payment,
		ClosingBalance:   res.closing,
		BudgetRemaining:  res.budget,
	})
}

// finalize sorts the ledger by date (stable, so same-date rows keep their
// minimum-then-surplus emission order) and fills in the running remaining
// balance by cumulative subtraction of principal applied. The running total
// is clamped to zero within a small epsilon to absorb rounding residue.
func (r *ledgerRecorder) finalize() []domain.LedgerEntry {
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Date.Before(r.entries[j].Date)
	})

	running := decimal.Zero
	for i := range r.entries {
		running = running.Sub(r.entries[i].PrincipalApplied)
		if running.LessThan(runningBalanceEpsilon) {
			running = decimal.Zero
		}
		r.entries[i].RunningBalance = running
	}
	return r.entries
}
