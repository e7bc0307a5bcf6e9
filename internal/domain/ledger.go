package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger row kinds. Opening rows seed the running balance; minimum and
// surplus rows record actual payment applications.
const (
	LedgerKindOpening = "opening"
	LedgerKindMinimum = "minimum"
	LedgerKindSurplus = "surplus"
)

// LedgerEntry is one recorded transaction in the payoff schedule.
// Entries are append-only and immutable once emitted; RunningBalance is
// filled in by a post-pass over the date-sorted ledger.
type LedgerEntry struct {
	LoanID           uuid.UUID       `json:"loan_id"`
	Label            string          `json:"label"`
	Kind             string          `json:"kind"`
	Date             time.Time       `json:"date"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	InterestAccrued  decimal.Decimal `json:"interest_accrued"`
	PrincipalApplied decimal.Decimal `json:"principal_applied"`
	Payment          decimal.Decimal `json:"payment"`
	ClosingBalance   decimal.Decimal `json:"closing_balance"`
	BudgetRemaining  decimal.Decimal `json:"budget_remaining"`
	RunningBalance   decimal.Decimal `json:"running_balance"`
}

// Plan DTOs

type PlanRequest struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Strategy      string          `json:"strategy" validate:"required"`
	SortField     string          `json:"sort_field,omitempty"`
	SortDirection string          `json:"sort_direction,omitempty" validate:"omitempty,oneof=ascending descending"`
}

type PlanPreviewRequest struct {
	Loans         []CreateLoanRequest `json:"loans" validate:"required,min=1,dive"`
	MonthlyBudget decimal.Decimal     `json:"monthly_budget"`
	Strategy      string              `json:"strategy" validate:"required"`
	SortField     string              `json:"sort_field,omitempty"`
	SortDirection string              `json:"sort_direction,omitempty" validate:"omitempty,oneof=ascending descending"`
}

type PlanResponse struct {
	Strategy     string        `json:"strategy"`
	Entries      []LedgerEntry `json:"entries"`
	Cycles       int           `json:"cycles"`
	NonConverged bool          `json:"non_converged"`
}
