package response

import (
	"errors"
	"net/http"

	"github.com/edusuite/institute-backend-go/internal/domain/payroll"
	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/domain/transaction"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, payroll.ErrPaymentAlreadyExists):
		Conflict(w, "Salary payment already exists for this period")
	case errors.Is(err, payroll.ErrPaymentAlreadyPaid):
		Conflict(w, "Salary payment already paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrInvalidPlanType):
		BadRequest(w, "Invalid compensation plan type", nil)

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
