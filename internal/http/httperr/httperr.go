// Package httperr maps domain errors onto HTTP status codes so handlers
// share one translation instead of repeating errors.Is chains.
package httperr

import (
	"errors"
	"net/http"

	"github.com/acadfund/acadfund/internal/fault"
)

func Status(err error) int {
	switch {
	case errors.Is(err, fault.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, fault.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, fault.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fault.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, fault.ErrInsufficientBudget):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Write sends the error as a plain-text response. Internal errors are not
// echoed back to the client.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}

	http.Error(w, err.Error(), status)
}
