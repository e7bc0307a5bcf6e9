package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/devloperakramul/aka-loan-amortization/internal/engine"
	"github.com/devloperakramul/aka-loan-amortization/internal/repository"
	customError "github.com/devloperakramul/aka-loan-amortization/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanService computes payoff schedules over the stored loan set, caching
// results keyed by a fingerprint of the inputs.
type PlanService struct {
	loanRepo  repository.LoanRepository
	cache     repository.PlanCache
	simulator *engine.Simulator
	cacheTTL  time.Duration
}

func NewPlanService(
	loanRepo repository.LoanRepository,
	cache repository.PlanCache,
	simulator *engine.Simulator,
	cacheTTL time.Duration,
) *PlanService {
	return &PlanService{
		loanRepo:  loanRepo,
		cache:     cache,
		simulator: simulator,
		cacheTTL:  cacheTTL,
	}
}

// ComputePlan runs the simulation over the stored loans. Configuration
// errors (unknown strategy, missing sort key, negative budget) fail before
// anything is loaded or computed.
func (s *PlanService) ComputePlan(ctx context.Context, request *domain.PlanRequest) (*domain.PlanResponse, error) {
	desc, err := buildDescriptor(request.Strategy, request.SortField, request.SortDirection)
	if err != nil {
		return nil, err
	}
	if request.MonthlyBudget.LessThan(decimal.Zero) {
		return nil, customError.WrapInvalidBudget(request.MonthlyBudget.String())
	}

	records, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	loans := make([]domain.Loan, 0, len(records))
	for _, record := range records {
		loans = append(loans, *record)
	}

	key := planFingerprint(loans, request.MonthlyBudget, desc)
	if cached, err := s.cache.Get(ctx, key); err != nil {
		log.Printf("Plan cache lookup failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	result, err := s.simulator.Simulate(loans, request.MonthlyBudget, desc)
	if err != nil {
		return nil, err
	}

	response := &domain.PlanResponse{
		Strategy:     desc.Strategy.DisplayName(),
		Entries:      result.Entries,
		Cycles:       result.Cycles,
		NonConverged: result.NonConverged,
	}

	if err := s.cache.Set(ctx, key, response, s.cacheTTL); err != nil {
		log.Printf("Failed to cache plan: %v", err)
	}
	return response, nil
}

// PreviewPlan runs the simulation over loans supplied inline, without
// touching the record store or the cache.
func (s *PlanService) PreviewPlan(ctx context.Context, request *domain.PlanPreviewRequest) (*domain.PlanResponse, error) {
	desc, err := buildDescriptor(request.Strategy, request.SortField, request.SortDirection)
	if err != nil {
		return nil, err
	}
	if request.MonthlyBudget.LessThan(decimal.Zero) {
		return nil, customError.WrapInvalidBudget(request.MonthlyBudget.String())
	}

	loans := make([]domain.Loan, 0, len(request.Loans))
	for i := range request.Loans {
		loan, err := loanFromRequest(&request.Loans[i])
		if err != nil {
			return nil, err
		}
		loan.ID = uuid.New()
		loans = append(loans, *loan)
	}

	result, err := s.simulator.Simulate(loans, request.MonthlyBudget, desc)
	if err != nil {
		return nil, err
	}

	return &domain.PlanResponse{
		Strategy:     desc.Strategy.DisplayName(),
		Entries:      result.Entries,
		Cycles:       result.Cycles,
		NonConverged: result.NonConverged,
	}, nil
}

func buildDescriptor(strategy, sortField, sortDirection string) (engine.Descriptor, error) {
	parsed, err := engine.ParseStrategy(strategy)
	if err != nil {
		return engine.Descriptor{}, err
	}

	desc := engine.Descriptor{Strategy: parsed}
	if parsed == engine.StrategyManual {
		desc.Manual = &engine.ManualSort{
			Field:     sortField,
			Direction: engine.SortDirection(sortDirection),
		}
	}

	if err := desc.Validate(); err != nil {
		return engine.Descriptor{}, err
	}
	return desc, nil
}

// planFingerprint hashes everything the simulation depends on, so a cached
// plan is only served while the loan set, budget and strategy are unchanged.
func planFingerprint(loans []domain.Loan, budget decimal.Decimal, desc engine.Descriptor) string {
	lines := make([]string, 0, len(loans))
	for _, loan := range loans {
		lines = append(lines, fmt.Sprintf("%s|%s|%s|%s|%s|%d",
			loan.ID,
			loan.Balance,
			loan.AnnualRate,
			loan.MinimumPayment,
			loan.StartDate.Format("2006-01-02"),
			loan.Priority,
		))
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		fmt.Fprintln(h, line)
	}
	fmt.Fprintf(h, "budget=%s;strategy=%d", budget, desc.Strategy)
	if desc.Manual != nil {
		fmt.Fprintf(h, ";sort=%s,%s", desc.Manual.Field, desc.Manual.Direction)
	}
	return hex.EncodeToString(h.Sum(nil))
}
