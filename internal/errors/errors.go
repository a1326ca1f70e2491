// Package errors defines the coded errors returned at the operation boundary.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a standardized error code.
type ErrorCode string

const (
	ErrCodeOperationNotFound ErrorCode = "OPERATION_NOT_FOUND"
	ErrCodeInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// OperationError is a structured error raised while dispatching an operation.
type OperationError struct {
	Code      ErrorCode `json:"code"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
	Details   []string  `json:"details,omitempty"`
	Err       error     `json:"-"`
}

func (e *OperationError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("OperationError[%s] %s: %s %v", e.Code, e.Operation, e.Message, e.Details)
	}
	return fmt.Sprintf("OperationError[%s] %s: %s", e.Code, e.Operation, e.Message)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is matches another OperationError by code.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Operation == "" || t.Operation == e.Operation)
}

// Sentinels for errors.Is checks.
var (
	ErrOperationNotFound = &OperationError{Code: ErrCodeOperationNotFound}
	ErrInvalidInput      = &OperationError{Code: ErrCodeInvalidInput}
)

// NotFound builds an OPERATION_NOT_FOUND error.
func NotFound(operation string) *OperationError {
	return &OperationError{
		Code:      ErrCodeOperationNotFound,
		Operation: operation,
		Message:   "unknown operation",
	}
}

// InvalidInput builds an INVALID_INPUT error with per-field details.
func InvalidInput(operation string, details []string) *OperationError {
	return &OperationError{
		Code:      ErrCodeInvalidInput,
		Operation: operation,
		Message:   "input does not match schema",
		Details:   details,
	}
}

// Internal wraps an unexpected failure.
func Internal(operation string, err error) *OperationError {
	return &OperationError{
		Code:      ErrCodeInternal,
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}
}

// CodeOf returns the code of the first OperationError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Code, true
	}
	return "", false
}
