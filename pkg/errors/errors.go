package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrUnknownStrategy  = errors.New("unknown payoff strategy")
	ErrMissingSortKey   = errors.New("manual strategy requires a sort field and direction")
	ErrUnknownSortField = errors.New("unknown manual sort field")
	ErrLoanNotFound     = errors.New("loan not found")
	ErrInvalidBudget    = errors.New("monthly budget must not be negative")
	ErrInvalidLoan      = errors.New("invalid loan terms")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeUnknownStrategy  = "UNKNOWN_STRATEGY"
	ErrCodeMissingSortKey   = "MISSING_SORT_KEY"
	ErrCodeUnknownSortField = "UNKNOWN_SORT_FIELD"
	ErrCodeLoanNotFound     = "LOAN_NOT_FOUND"
	ErrCodeInvalidBudget    = "INVALID_BUDGET"
	ErrCodeInvalidLoan      = "INVALID_LOAN"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeCacheError       = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapUnknownStrategy(strategy string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnknownStrategy,
		fmt.Sprintf("Strategy %q is not a recognized payoff strategy", strategy),
		ErrUnknownStrategy,
	)
}

func WrapMissingSortKey() *BusinessError {
	return NewBusinessError(
		ErrCodeMissingSortKey,
		"Manual strategy requires sort_field and sort_direction",
		ErrMissingSortKey,
	)
}

func WrapUnknownSortField(field string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnknownSortField,
		fmt.Sprintf("Field %q is not sortable", field),
		ErrUnknownSortField,
	)
}

func WrapLoanNotFound(loanID string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotFound,
		fmt.Sprintf("Loan with ID %s not found", loanID),
		ErrLoanNotFound,
	)
}

func WrapInvalidBudget(budget string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidBudget,
		fmt.Sprintf("Monthly budget %s must not be negative", budget),
		ErrInvalidBudget,
	)
}

func WrapInvalidLoan(reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidLoan,
		reason,
		ErrInvalidLoan,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
