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

// ErrUnauthenticated indicates a missing or invalid session/token.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden indicates the actor lacks the role, audience or ownership
// required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation lost a race or would violate a state
// invariant (duplicate application, capacity exceeded, illegal transition).
var ErrConflict = errors.New("conflict")

// AppError wraps an underlying error with an HTTP status and a user-facing
// message that is safe to return to the caller.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ComplianceError blocks marketplace participation because of the actor's
// ND-nummer state. It is distinct from a generic ErrForbidden because it
// carries a remediation URL for the client to surface.
type ComplianceError struct {
	Message   string // user-facing, Dutch
	ActionURL string
}

func (e *ComplianceError) Error() string {
	return e.Message
}

func (e *ComplianceError) Unwrap() error {
	return ErrForbidden
}

// NewComplianceError creates a ComplianceError pointing at the compliance
// dashboard.
func NewComplianceError(message string) *ComplianceError {
	return &ComplianceError{Message: message, ActionURL: "/dashboard/compliance"}
}
