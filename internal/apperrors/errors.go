package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not touch the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnexpectedStatus indicates the remote store answered with a status the caller does not accept.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// FailureKind classifies a user-facing, recoverable failure of a client operation.
type FailureKind string

const (
	LoadFailure   FailureKind = "LOAD_FAILURE"
	SubmitFailure FailureKind = "SUBMIT_FAILURE"
	DeleteFailure FailureKind = "DELETE_FAILURE"
	AuthFailure   FailureKind = "AUTH_FAILURE"
	ReportFailure FailureKind = "REPORT_FAILURE"
)

// OperationError is the outcome of a failed client operation.
// Message is what the user sees; Err is the underlying cause.
type OperationError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError wraps cause as a failure of the given kind.
func NewOperationError(kind FailureKind, message string, cause error) *OperationError {
	return &OperationError{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the failure kind carried by err, if any.
func KindOf(err error) (FailureKind, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind, true
	}
	return "", false
}
