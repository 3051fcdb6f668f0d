package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charlles-dev/Unity-Bank/internal/ledger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, ErrorResponse{Error: msg})
}

// DomainStatus maps ledger errors to HTTP status codes. Precondition
// violations on the request are 400s, missing accounts 404, and conflicts
// with current account state 409.
func DomainStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrDuplicateHolder),
		errors.Is(err, ledger.ErrNonZeroBalance):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidInput),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidTarget),
		errors.Is(err, ledger.ErrSameAccount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError renders a ledger error with its mapped status code.
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, DomainStatus(err), err.Error())
}
