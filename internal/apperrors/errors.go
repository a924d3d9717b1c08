package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrProtected indicates an operation was attempted against a voucher whose
// current posting or approval state disallows it (e.g. editing an approved voucher).
var ErrProtected = errors.New("operation not allowed in current state")

// ErrConflict indicates the operation conflicts with the resource's current state
// (e.g. reversing a voucher that is already reversed).
var ErrConflict = errors.New("operation conflicts with current state")

// ErrForbidden indicates the acting user lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrRemote indicates the ledger store reported a failure or the call to it failed.
var ErrRemote = errors.New("ledger store operation failed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// FieldError is a single validation violation tied to a field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in a request so callers can
// present the complete list rather than the first failure.
type ValidationErrors struct {
	Violations []FieldError `json:"violations"`
}

func (v *ValidationErrors) Error() string {
	if len(v.Violations) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, len(v.Violations))
	for i, fe := range v.Violations {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match collected violations.
func (v *ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Add appends a violation.
func (v *ValidationErrors) Add(field, message string) {
	v.Violations = append(v.Violations, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any violation was collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Violations) > 0
}

// ErrOrNil returns the collection as an error, or nil when empty.
func (v *ValidationErrors) ErrOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
