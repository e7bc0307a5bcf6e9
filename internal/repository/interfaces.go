package repository

import (
	"context"
	"time"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/google/uuid"
)

// LoanRepository defines the interface for loan record operations
type LoanRepository interface {
	// Create creates a new loan record
	Create(ctx context.Context, loan *domain.Loan) error

	// GetByID retrieves a loan by its id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error)

	// List retrieves all loan records
	List(ctx context.Context) ([]*domain.Loan, error)

	// Update updates a loan record
	Update(ctx context.Context, loan *domain.Loan) error

	// Delete removes a loan record
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanCache caches computed payoff plans keyed by an input fingerprint
type PlanCache interface {
	// Get returns the cached plan for a key, or nil on a miss
	Get(ctx context.Context, key string) (*domain.PlanResponse, error)

	// Set stores a computed plan under a key with a TTL
	Set(ctx context.Context, key string, plan *domain.PlanResponse, ttl time.Duration) error

	// InvalidateAll drops every cached plan; returns the number dropped
	InvalidateAll(ctx context.Context) (int, error)
}
