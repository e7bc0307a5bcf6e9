package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan represents one debt instrument as tracked for simulation.
// AnnualRate is a percentage (12.5 means 12.5% per year).
type Loan struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	AnnualRate     decimal.Decimal `json:"annual_interest_rate" db:"annual_interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" db:"minimum_payment"`
	StartDate      time.Time       `json:"start_date" db:"start_date"`
	Priority       int             `json:"priority" db:"priority"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type CreateLoanRequest struct {
	Name           string          `json:"name" validate:"required"`
	Balance        decimal.Decimal `json:"balance" validate:"required"`
	AnnualRate     decimal.Decimal `json:"annual_interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	StartDate      string          `json:"start_date" validate:"required"`
	Priority       int             `json:"priority"`
}

type UpdateLoanRequest struct {
	Name           *string          `json:"name,omitempty"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	AnnualRate     *decimal.Decimal `json:"annual_interest_rate,omitempty"`
	MinimumPayment *decimal.Decimal `json:"minimum_payment,omitempty"`
	StartDate      *string          `json:"start_date,omitempty"`
	Priority       *int             `json:"priority,omitempty"`
}

type LoanListResponse struct {
	Loans []*Loan `json:"loans"`
	Count int     `json:"count"`
}
