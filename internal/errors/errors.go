// Package errors provides structured error types and handling for holoterm.
//nolint:revive // var-naming: Package name is intentional for error type organization
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeUnknown is for unknown errors
	ErrorTypeUnknown ErrorType = "unknown"

	// ErrorTypeUsage is for missing or malformed arguments to a known command
	ErrorTypeUsage ErrorType = "usage"

	// ErrorTypeNotFound is for unknown commands, art names, elements, shapes
	// and formulas
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeEvaluation is for rejected or failed expression evaluation
	ErrorTypeEvaluation ErrorType = "evaluation"

	// ErrorTypeCollaborator is for failures reaching an external service
	ErrorTypeCollaborator ErrorType = "collaborator"

	// ErrorTypeValidation is for validation errors
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeTimeout is for timeout errors
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeConfiguration is for configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal is for internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// HoloError represents a structured error with additional context
type HoloError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface
func (e *HoloError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *HoloError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *HoloError) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *HoloError
	if errors.As(target, &targetErr) {
		return e.Type == targetErr.Type
	}

	return errors.Is(e.Cause, target)
}

// WithContext adds context to the error
func (e *HoloError) WithContext(key string, value interface{}) *HoloError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new HoloError
func New(errType ErrorType, message string) *HoloError {
	return &HoloError{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new HoloError with formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *HoloError {
	return &HoloError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *HoloError {
	if err == nil {
		return nil
	}

	// If already a HoloError, preserve the original stack
	var holoErr *HoloError
	if errors.As(err, &holoErr) {
		return &HoloError{
			Type:    errType,
			Message: message,
			Cause:   err,
			Context: holoErr.Context,
			Stack:   holoErr.Stack,
		}
	}

	return &HoloError{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// Wrapf wraps an existing error with formatted message
func Wrapf(err error, errType ErrorType, format string, args ...interface{}) *HoloError {
	if err == nil {
		return nil
	}

	return Wrap(err, errType, fmt.Sprintf(format, args...))
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	var frames []StackFrame

	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		fnName := fn.Name()
		if strings.Contains(fnName, "runtime.") ||
			strings.Contains(fnName, "testing.") {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fnName,
			File:     file,
			Line:     line,
		})

		if len(frames) >= 10 {
			break
		}
	}

	return frames
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var holoErr *HoloError
	if errors.As(err, &holoErr) {
		return holoErr.Type == errType
	}
	return false
}

// GetType returns the error type
func GetType(err error) ErrorType {
	var holoErr *HoloError
	if errors.As(err, &holoErr) {
		return holoErr.Type
	}
	return ErrorTypeUnknown
}

// Common error constructors

// Usage creates a usage error with a corrective hint
func Usage(hint string) *HoloError {
	return New(ErrorTypeUsage, hint)
}

// Usagef creates a usage error with formatted message
func Usagef(format string, args ...interface{}) *HoloError {
	return Newf(ErrorTypeUsage, format, args...)
}

// NotFound creates a not found error
func NotFound(resource string) *HoloError {
	return Newf(ErrorTypeNotFound, "%s not found", resource)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *HoloError {
	return Newf(ErrorTypeNotFound, format, args...)
}

// Evaluation creates an evaluation error
func Evaluation(message string) *HoloError {
	return New(ErrorTypeEvaluation, message)
}

// Evaluationf creates an evaluation error with formatted message
func Evaluationf(format string, args ...interface{}) *HoloError {
	return Newf(ErrorTypeEvaluation, format, args...)
}

// Invalid creates a validation error
func Invalid(field, reason string) *HoloError {
	err := Newf(ErrorTypeValidation, "invalid %s: %s", field, reason)
	return err.WithContext("field", field).WithContext("reason", reason)
}

// Internal creates an internal error
func Internal(message string) *HoloError {
	return New(ErrorTypeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *HoloError {
	return Newf(ErrorTypeInternal, format, args...)
}

// Timeout creates a timeout error
func Timeout(operation string) *HoloError {
	return Newf(ErrorTypeTimeout, "%s timed out", operation)
}

// Config creates a configuration error
func Config(message string) *HoloError {
	return New(ErrorTypeConfiguration, message)
}

// Configf creates a configuration error with formatted message
func Configf(format string, args ...interface{}) *HoloError {
	return Newf(ErrorTypeConfiguration, format, args...)
}

// Domain-specific error constructors for holoterm

// Collaborator creates an error for an unreachable external service
func Collaborator(service string, err error) *HoloError {
	wrapped := Wrapf(err, ErrorTypeCollaborator, "%s service unavailable", service)
	return wrapped.WithContext("service", service)
}

// Collaboratorf creates a collaborator error with formatted message
func Collaboratorf(service, format string, args ...interface{}) *HoloError {
	err := Newf(ErrorTypeCollaborator, format, args...)
	return err.WithContext("service", service)
}

// ConfigLoad wraps a configuration loading error
func ConfigLoad(path string, err error) *HoloError {
	wrapped := Wrapf(err, ErrorTypeConfiguration, "failed to load configuration from %s", path)
	return wrapped.WithContext("config_path", path)
}

// KeyStore creates an error for keyring access failures
func KeyStore(operation string, err error) *HoloError {
	wrapped := Wrapf(err, ErrorTypeInternal, "keyring error during %s", operation)
	return wrapped.WithContext("component", "auth").WithContext("operation", operation)
}
