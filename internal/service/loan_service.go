package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/devloperakramul/aka-loan-amortization/internal/repository"
	customError "github.com/devloperakramul/aka-loan-amortization/pkg/errors"
	"github.com/devloperakramul/aka-loan-amortization/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanService manages the persistent loan records the planner runs against.
// Any mutation drops cached plans, since they were computed from stale
// balances.
type LoanService struct {
	loanRepo repository.LoanRepository
	cache    repository.PlanCache
}

func NewLoanService(loanRepo repository.LoanRepository, cache repository.PlanCache) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		cache:    cache,
	}
}

func (s *LoanService) CreateLoan(ctx context.Context, request *domain.CreateLoanRequest) (*domain.Loan, error) {
	loan, err := loanFromRequest(request)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	loan.ID = uuid.New()
	loan.CreatedAt = now
	loan.UpdatedAt = now

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.invalidatePlans(ctx)
	return loan, nil
}

func (s *LoanService) GetLoan(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapLoanNotFound(id.String())
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return loan, nil
}

func (s *LoanService) ListLoans(ctx context.Context) ([]*domain.Loan, error) {
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return loans, nil
}

func (s *LoanService) UpdateLoan(ctx context.Context, id uuid.UUID, request *domain.UpdateLoanRequest) (*domain.Loan, error) {
	loan, err := s.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		loan.Name = *request.Name
	}
	if request.Balance != nil {
		loan.Balance = *request.Balance
	}
	if request.AnnualRate != nil {
		loan.AnnualRate = *request.AnnualRate
	}
	if request.MinimumPayment != nil {
		loan.MinimumPayment = *request.MinimumPayment
	}
	if request.StartDate != nil {
		startDate, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return nil, customError.WrapInvalidLoan(err.Error())
		}
		loan.StartDate = startDate
	}
	if request.Priority != nil {
		loan.Priority = *request.Priority
	}

	if err := validateLoanTerms(loan); err != nil {
		return nil, err
	}

	loan.UpdatedAt = time.Now().UTC()
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.invalidatePlans(ctx)
	return loan, nil
}

func (s *LoanService) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetLoan(ctx, id); err != nil {
		return err
	}

	if err := s.loanRepo.Delete(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	s.invalidatePlans(ctx)
	return nil
}

// Cache invalidation is best effort; a failure only means the next plan
// request may recompute against a stale entry that expires by TTL anyway.
func (s *LoanService) invalidatePlans(ctx context.Context) {
	if _, err := s.cache.InvalidateAll(ctx); err != nil {
		log.Printf("Failed to invalidate plan cache: %v", err)
	}
}

func loanFromRequest(request *domain.CreateLoanRequest) (*domain.Loan, error) {
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidLoan(err.Error())
	}

	loan := &domain.Loan{
		Name:           request.Name,
		Balance:        request.Balance,
		AnnualRate:     request.AnnualRate,
		MinimumPayment: request.MinimumPayment,
		StartDate:      startDate,
		Priority:       request.Priority,
	}

	if err := validateLoanTerms(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func validateLoanTerms(loan *domain.Loan) error {
	if loan.Balance.LessThan(decimal.Zero) {
		return customError.WrapInvalidLoan(fmt.Sprintf("balance %s must not be negative", loan.Balance))
	}
	if loan.AnnualRate.LessThan(decimal.Zero) {
		return customError.WrapInvalidLoan(fmt.Sprintf("annual interest rate %s must not be negative", loan.AnnualRate))
	}
	if loan.MinimumPayment.LessThan(decimal.Zero) {
		return customError.WrapInvalidLoan(fmt.Sprintf("minimum payment %s must not be negative", loan.MinimumPayment))
	}
	return nil
}
