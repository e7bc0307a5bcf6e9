package handler

import (
	"errors"
	"net/http"

	customError "github.com/devloperakramul/aka-loan-amortization/pkg/errors"
	"github.com/devloperakramul/aka-loan-amortization/pkg/response"
)

// writeError maps business error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "Unexpected error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeLoanNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeUnknownStrategy,
		customError.ErrCodeMissingSortKey,
		customError.ErrCodeUnknownSortField,
		customError.ErrCodeInvalidBudget,
		customError.ErrCodeInvalidLoan:
		response.BadRequest(w, businessErr.Message, businessErr.Err)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr.Err)
	}
}
