package remote

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// StatusError is a non-2xx answer of the remote store.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the "error" field of the response body, when present.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap maps the status onto the application sentinels so callers can use
// errors.Is without knowing about HTTP.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.ErrValidation
	case http.StatusConflict:
		return apperrors.ErrDuplicate
	default:
		return apperrors.ErrUnexpectedStatus
	}
}
