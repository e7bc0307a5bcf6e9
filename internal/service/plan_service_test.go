package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/devloperakramul/aka-loan-amortization/internal/engine"
	customError "github.com/devloperakramul/aka-loan-amortization/pkg/errors"
	"github.com/devloperakramul/aka-loan-amortization/tests/mocks"
)

func storedLoan() *domain.Loan {
	return &domain.Loan{
		ID:             uuid.New(),
		Name:           "Car",
		Balance:        decimal.NewFromInt(1200),
		AnnualRate:     decimal.NewFromInt(12),
		MinimumPayment: decimal.NewFromInt(200),
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Priority:       1,
	}
}

func TestComputePlan_Success(t *testing.T) {
	mockLoanRepo := &mocks.MockLoanRepository{}
	mockCache := &mocks.MockPlanCache{}

	service := &PlanService{
		loanRepo:  mockLoanRepo,
		cache:     mockCache,
		simulator: engine.NewSimulator(0),
		cacheTTL:  time.Hour,
	}

	mockLoanRepo.On("List", mock.Anything).Return([]*domain.Loan{storedLoan()}, nil)
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"),
		mock.AnythingOfType("*domain.PlanResponse"), time.Hour).Return(nil)

	plan, err := service.ComputePlan(context.Background(), &domain.PlanRequest{
		MonthlyBudget: decimal.NewFromInt(200),
		Strategy:      "avalanche",
	})

	require.NoError(t, err)
	assert.Equal(t, "Avalanche High Interest", plan.Strategy)
	assert.Equal(t, 7, plan.Cycles)
	assert.False(t, plan.NonConverged)
	assert.NotEmpty(t, plan.Entries)

	mockLoanRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestComputePlan_CacheHit(t *testing.T) {
	mockLoanRepo := &mocks.MockLoanRepository{}
	mockCache := &mocks.MockPlanCache{}

	service := &PlanService{
		loanRepo:  mockLoanRepo,
		cache:     mockCache,
		simulator: engine.NewSimulator(0),
		cacheTTL:  time.Hour,
	}

	cached := &domain.PlanResponse{Strategy: "Small Balance", Cycles: 3}
	mockLoanRepo.On("List", mock.Anything).Return([]*domain.Loan{storedLoan()}, nil)
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	plan, err := service.ComputePlan(context.Background(), &domain.PlanRequest{
		MonthlyBudget: decimal.NewFromInt(200),
		Strategy:      "snowball",
	})

	require.NoError(t, err)
	assert.Equal(t, cached, plan)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComputePlan_UnknownStrategyFailsFast(t *testing.T) {
	mockLoanRepo := &mocks.MockLoanRepository{}
	mockCache := &mocks.MockPlanCache{}

	service := &PlanService{
		loanRepo:  mockLoanRepo,
		cache:     mockCache,
		simulator: engine.NewSimulator(0),
		cacheTTL:  time.Hour,
	}

	_, err := service.ComputePlan(context.Background(), &domain.PlanRequest{
		MonthlyBudget: decimal.NewFromInt(200),
		Strategy:      "tsunami",
	})

	assert.ErrorIs(t, err, customError.ErrUnknownStrategy)
	mockLoanRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestComputePlan_ManualWithoutSortKey(t *testing.T) {
	service := &PlanService{simulator: engine.NewSimulator(0)}

	_, err := service.ComputePlan(context.Background(), &domain.PlanRequest{
		MonthlyBudget: decimal.NewFromInt(200),
		Strategy:      "manual",
	})

	assert.ErrorIs(t, err, customError.ErrMissingSortKey)
}

func TestComputePlan_NegativeBudget(t *testing.T) {
	service := &PlanService{simulator: engine.NewSimulator(0)}

	_, err := service.ComputePlan(context.Background(), &domain.PlanRequest{
		MonthlyBudget: decimal.NewFromInt(-5),
		Strategy:      "avalanche",
	})

	assert.ErrorIs(t, err, customError.ErrInvalidBudget)
}

func TestPreviewPlan_InlineLoans(t *testing.T) {
	service := &PlanService{simulator: engine.NewSimulator(0)}

	plan, err := service.PreviewPlan(context.Background(), &domain.PlanPreviewRequest{
		Loans: []domain.CreateLoanRequest{
			{
				Name:           "Card",
				Balance:        decimal.NewFromInt(1000),
				AnnualRate:     decimal.NewFromInt(12),
				MinimumPayment: decimal.NewFromInt(50),
				StartDate:      "2024-01-01",
				Priority:       1,
			},
		},
		MonthlyBudget: decimal.NewFromInt(500),
		Strategy:      "manual",
		SortField:     "balance",
		SortDirection: "ascending",
	})

	require.NoError(t, err)
	assert.Equal(t, "Default", plan.Strategy)
	assert.False(t, plan.NonConverged)
	assert.NotEmpty(t, plan.Entries)
}

func TestPreviewPlan_BadStartDate(t *testing.T) {
	service := &PlanService{simulator: engine.NewSimulator(0)}

	_, err := service.PreviewPlan(context.Background(), &domain.PlanPreviewRequest{
		Loans: []domain.CreateLoanRequest{
			{Name: "Card", Balance: decimal.NewFromInt(1000), StartDate: "someday"},
		},
		MonthlyBudget: decimal.NewFromInt(500),
		Strategy:      "snowball",
	})

	assert.ErrorIs(t, err, customError.ErrInvalidLoan)
}
