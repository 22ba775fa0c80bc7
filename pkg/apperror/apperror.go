package apperror

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure a mutation ended with.
type Code int

const (
	CodeReferenceNotFound Code = iota + 1000
	CodeInvariantViolation
	CodeNotFound
	CodeConstraintViolation
	CodeInvalidInput
)

func (c Code) String() string {
	switch c {
	case CodeReferenceNotFound:
		return "reference_not_found"
	case CodeInvariantViolation:
		return "invariant_violation"
	case CodeNotFound:
		return "not_found"
	case CodeConstraintViolation:
		return "constraint_violation"
	case CodeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Constraint kinds reported by the entity store.
const (
	ConstraintUnique     = "unique"
	ConstraintForeignKey = "foreign_key"
	ConstraintCheck      = "check"
	ConstraintNotNull    = "not_null"
)

// AppError is the typed failure returned by every mutation.
type AppError struct {
	Code       Code   `json:"code"`
	Entity     string `json:"entity,omitempty"`
	Key        string `json:"key,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
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

// Is matches any AppError carrying the same code, so the package sentinels work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrReferenceNotFound   = &AppError{Code: CodeReferenceNotFound, Message: "reference not found"}
	ErrInvariantViolation  = &AppError{Code: CodeInvariantViolation, Message: "invariant violation"}
	ErrNotFound            = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrConstraintViolation = &AppError{Code: CodeConstraintViolation, Message: "constraint violation"}
	ErrInvalidInput        = &AppError{Code: CodeInvalidInput, Message: "invalid input"}
)

// ReferenceNotFound reports that a write named a parent row that does not exist.
func ReferenceNotFound(entity, key string) *AppError {
	return &AppError{
		Code:    CodeReferenceNotFound,
		Entity:  entity,
		Key:     key,
		Message: fmt.Sprintf("referenced %s %q does not exist", entity, key),
	}
}

func InvariantViolation(entity, key, rule string) *AppError {
	return &AppError{
		Code:    CodeInvariantViolation,
		Entity:  entity,
		Key:     key,
		Message: rule,
	}
}

func NotFound(entity, key string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Entity:  entity,
		Key:     key,
		Message: fmt.Sprintf("%s %q not found", entity, key),
	}
}

// ConstraintViolation wraps a scalar or key constraint rejected by the database.
func ConstraintViolation(constraint, name string, err error) *AppError {
	message := fmt.Sprintf("%s constraint violated", constraint)
	if name != "" {
		message = fmt.Sprintf("%s constraint %q violated", constraint, name)
	}
	return &AppError{
		Code:       CodeConstraintViolation,
		Constraint: constraint,
		Key:        name,
		Message:    message,
		Err:        err,
	}
}

func InvalidInput(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
		Err:     err,
	}
}

// CodeOf extracts the code of the first AppError in err's chain.
func CodeOf(err error) (Code, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return 0, false
}

// Outcome names the result of an operation for logs and metrics.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code, ok := CodeOf(err); ok {
		return code.String()
	}
	return "error"
}
