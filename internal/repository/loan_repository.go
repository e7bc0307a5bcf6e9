package repository

import (
	"context"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"
)

type loanRepository struct {
	db *sqlx.DB
}

func NewLoanRepository(db *sqlx.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (id, name, balance, annual_interest_rate, minimum_payment, start_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.Name,
		loan.Balance,
		loan.AnnualRate,
		loan.MinimumPayment,
		loan.StartDate,
		loan.Priority,
		loan.CreatedAt,
		loan.UpdatedAt,
	)

	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	query := `
		SELECT id, name, balance, annual_interest_rate, minimum_payment, start_date, priority, created_at, updated_at
		FROM loans
		WHERE id = $1
	`

	var loan domain.Loan
	err := r.db.GetContext(ctx, &loan, query, id)
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	query := `
		SELECT id, name, balance, annual_interest_rate, minimum_payment, start_date, priority, created_at, updated_at
		FROM loans
		ORDER BY created_at
	`

	var loans []*domain.Loan
	err := r.db.SelectContext(ctx, &loans, query)
	if err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `
		UPDATE loans
		SET name = $2, balance = $3, annual_interest_rate = $4, minimum_payment = $5, start_date = $6, priority = $7, updated_at = $8
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.Name,
		loan.Balance,
		loan.AnnualRate,
		loan.MinimumPayment,
		loan.StartDate,
		loan.Priority,
		loan.UpdatedAt,
	)

	return err
}

func (r *loanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM loans WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
