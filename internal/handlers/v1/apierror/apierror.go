// Package apierror maps domain errors to HTTP status codes so every
// handler reports the same way.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/vault"
)

// New wraps a service error in a huma error with the right status code.
// Unknown errors become 500s.
func New(err error, msg string) error {
	return huma.NewError(statusFor(err), msg, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, vault.ErrBucketNotFound),
		errors.Is(err, vault.ErrGoalNotFound),
		errors.Is(err, vault.ErrStrategyNotFound):
		return http.StatusNotFound

	case errors.Is(err, vault.ErrUnauthorizedKeeper),
		errors.Is(err, vault.ErrNotOwner):
		return http.StatusForbidden

	case errors.Is(err, vault.ErrZeroAmount),
		errors.Is(err, vault.ErrZeroTarget),
		errors.Is(err, vault.ErrInvalidDeadline),
		errors.Is(err, vault.ErrInvalidInterval),
		errors.Is(err, vault.ErrInvalidSlippage),
		errors.Is(err, vault.ErrSameBucket),
		errors.Is(err, vault.ErrPercentageSumInvalid):
		return http.StatusBadRequest

	case errors.Is(err, vault.ErrInsufficientBucketBalance),
		errors.Is(err, vault.ErrInsufficientFunds),
		errors.Is(err, vault.ErrGoalLocked),
		errors.Is(err, vault.ErrGoalAlreadyWithdrawn),
		errors.Is(err, vault.ErrStrategyNotActive),
		errors.Is(err, vault.ErrStrategyAlreadyActive),
		errors.Is(err, vault.ErrStrategyCancelled),
		errors.Is(err, vault.ErrExecutionNotDue):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
