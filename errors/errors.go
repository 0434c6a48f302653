package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns ErrCodeInternal for non-AppError errors and "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// --- Common Error Constructors ---

// InvalidFilter creates a new AppError for an unresolvable filter value.
func InvalidFilter(category, value string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidFilter,
		Message: fmt.Sprintf("no matching filter for %q in category %q", value, category),
		Details: map[string]any{"category": category, "value": value},
	}
}

// UnknownCategory creates a new AppError for an unknown catalog category.
func UnknownCategory(name string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownCategory,
		Message: fmt.Sprintf("unknown catalog category %q", name),
		Details: map[string]any{"category": name},
	}
}

// UnknownMethod creates a new AppError for an unknown generation method.
func UnknownMethod(name string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownMethod,
		Message: fmt.Sprintf("unknown generation method %q", name),
		Details: map[string]any{"method": name},
	}
}

// EmptyPool creates a new AppError for a candidate pool with no entries.
func EmptyPool() *AppError {
	return &AppError{
		Code:    ErrCodeEmptyPool,
		Message: "no user agents matched the configured filters",
	}
}

// NotRegistered creates a new AppError for an unregistered provider factory.
func NotRegistered(name string) *AppError {
	return &AppError{
		Code:    ErrCodeNotRegistered,
		Message: fmt.Sprintf("provider factory %q not registered", name),
		Details: map[string]any{"provider": name},
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("the requested %s was not found", resource),
		Details: details,
	}
}

// InvalidInput creates a new AppError for invalid configuration input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Cause:   cause,
	}
}
