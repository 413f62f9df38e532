package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorType classifies a failure for status mapping and logging
type ErrorType string

const (
	// Request errors
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"

	// Server errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeTimeout  ErrorType = "TIMEOUT"
	ErrorTypeDatabase ErrorType = "DATABASE"
)

// statusByType is the HTTP status each type maps to when rendered
var statusByType = map[ErrorType]int{
	ErrorTypeValidation: http.StatusBadRequest,
	ErrorTypeNotFound:   http.StatusNotFound,
	ErrorTypeInternal:   http.StatusInternalServerError,
	ErrorTypeTimeout:    http.StatusInternalServerError,
	ErrorTypeDatabase:   http.StatusInternalServerError,
}

// AppError is the error carried from the stores up to the HTTP layer.
// Only Type, Message, Code and Details are ever serialized.
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
	HTTPStatus int                    `json:"-"`
}

func newAppError(errType ErrorType, message string) *AppError {
	e := &AppError{
		Type:       errType,
		Message:    message,
		HTTPStatus: statusByType[errType],
	}
	// Server errors get logged with their origin
	if e.HTTPStatus >= http.StatusInternalServerError {
		e.StackTrace = callerStack(3)
	}
	return e
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode sets a machine-readable code, such as a DynamoDB error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails attaches structured context
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause records the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// callerStack renders up to 16 frames above the constructor
func callerStack(skip int) string {
	var pcs [16]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return b.String()
}

// NewValidationError reports a request that cannot be served as given
func NewValidationError(message string) *AppError {
	return newAppError(ErrorTypeValidation, message)
}

// NewNotFoundError reports a missing record of the named resource
func NewNotFoundError(resource string) *AppError {
	return newAppError(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource))
}

// NewInternalError reports an unexpected failure
func NewInternalError(message string) *AppError {
	return newAppError(ErrorTypeInternal, message)
}

// NewTimeoutError reports a store call cut short by its deadline
func NewTimeoutError(operation string) *AppError {
	return newAppError(ErrorTypeTimeout, fmt.Sprintf("operation '%s' timed out", operation))
}

// NewDatabaseError reports a failed store call
func NewDatabaseError(operation string, err error) *AppError {
	return newAppError(ErrorTypeDatabase, fmt.Sprintf("database operation '%s' failed", operation)).WithCause(err)
}

// GetAppError extracts the first AppError in the chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}
