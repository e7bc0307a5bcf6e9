package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	customError "github.com/devloperakramul/aka-loan-amortization/pkg/errors"
	"github.com/shopspring/decimal"
)

// Strategy selects how loans are ordered when budget is distributed.
type Strategy int

const (
	StrategySmart Strategy = iota
	StrategyAvalanche
	StrategySnowball
	StrategyHighestPriority
	StrategyLowestPriority
	StrategyManual
)

// DisplayName is the human-readable strategy name used on surplus ledger rows.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategySmart:
		return "Smart Pay"
	case StrategyAvalanche:
		return "Avalanche High Interest"
	case StrategySnowball:
		return "Small Balance"
	case StrategyHighestPriority:
		return "Highest Priority"
	case StrategyLowestPriority:
		return "Lowest Priority"
	case StrategyManual:
		return "Default"
	}
	return "Unknown"
}

// ParseStrategy maps an API strategy selector onto the enumeration.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smart":
		return StrategySmart, nil
	case "avalanche":
		return StrategyAvalanche, nil
	case "snowball":
		return StrategySnowball, nil
	case "highest-priority":
		return StrategyHighestPriority, nil
	case "lowest-priority":
		return StrategyLowestPriority, nil
	case "manual":
		return StrategyManual, nil
	}
	return 0, customError.WrapUnknownStrategy(s)
}

type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// ManualSort is the caller-specified ordering used by StrategyManual.
type ManualSort struct {
	Field     string
	Direction SortDirection
}

// Descriptor is a strategy selector plus the manual-sort payload, which is
// required exactly when Strategy is StrategyManual.
type Descriptor struct {
	Strategy Strategy
	Manual   *ManualSort
}

// Validate fails fast on selectors outside the enumeration and on a Manual
// strategy without a usable sort key. It runs before any cycle.
func (d Descriptor) Validate() error {
	switch d.Strategy {
	case StrategySmart, StrategyAvalanche, StrategySnowball,
		StrategyHighestPriority, StrategyLowestPriority:
		return nil
	case StrategyManual:
		if d.Manual == nil || d.Manual.Field == "" || d.Manual.Direction == "" {
			return customError.WrapMissingSortKey()
		}
		if d.Manual.Direction != SortAscending && d.Manual.Direction != SortDescending {
			return customError.WrapMissingSortKey()
		}
		if _, ok := manualSortFields[d.Manual.Field]; !ok {
			return customError.WrapUnknownSortField(d.Manual.Field)
		}
		return nil
	}
	return customError.WrapUnknownStrategy(fmt.Sprintf("strategy(%d)", d.Strategy))
}

// manualSortFields maps a manual sort key to a value extractor. A nil
// extractor marks a text field compared lexicographically.
var manualSortFields = map[string]func(domain.Loan) decimal.Decimal{
	"name":               nil,
	"balance":            func(l domain.Loan) decimal.Decimal { return l.Balance },
	"annualInterestRate": func(l domain.Loan) decimal.Decimal { return l.AnnualRate },
	"minimumPayment":     func(l domain.Loan) decimal.Decimal { return l.MinimumPayment },
	"priority":           func(l domain.Loan) decimal.Decimal { return decimal.NewFromInt(int64(l.Priority)) },
	"startDate":          func(l domain.Loan) decimal.Decimal { return decimal.NewFromInt(l.StartDate.Unix()) },
	"monthlyInterest":    func(l domain.Loan) decimal.Decimal { return MonthlyInterest(l.Balance, l.AnnualRate) },
}

// OrderLoans returns a fresh slice holding the loans in payoff order for the
// given strategy. The input is never mutated; exact ties preserve input
// order (stable sort).
func OrderLoans(loans []domain.Loan, desc Descriptor) ([]domain.Loan, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	ordered := append([]domain.Loan(nil), loans...)

	switch desc.Strategy {
	case StrategySmart:
		// Priority first, then highest rate, then smallest balance.
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			if c := a.AnnualRate.Cmp(b.AnnualRate); c != 0 {
				return c > 0
			}
			return a.Balance.LessThan(b.Balance)
		})
	case StrategyAvalanche:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate.GreaterThan(ordered[j].AnnualRate)
		})
	case StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance.LessThan(ordered[j].Balance)
		})
	case StrategyHighestPriority:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Priority < ordered[j].Priority
		})
	case StrategyLowestPriority:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Priority > ordered[j].Priority
		})
	case StrategyManual:
		sortManual(ordered, *desc.Manual)
	}

	return ordered, nil
}

func sortManual(loans []domain.Loan, manual ManualSort) {
	asc := manual.Direction == SortAscending

	if extract := manualSortFields[manual.Field]; extract != nil {
		sort.SliceStable(loans, func(i, j int) bool {
			c := extract(loans[i]).Cmp(extract(loans[j]))
			if asc {
				return c < 0
			}
			return c > 0
		})
		return
	}

	// Text field: lexicographic comparison.
	sort.SliceStable(loans, func(i, j int) bool {
		c := strings.Compare(loans[i].Name, loans[j].Name)
		if asc {
			return c < 0
		}
		return c > 0
	})
}
