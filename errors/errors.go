package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type of the runtime core.
type AppError struct {
	// Code is a machine-readable error kind.
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

// Is matches any *AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
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

// Sentinels for errors.Is comparisons. Never mutate or return these directly.
var (
	ErrStopIteration     = New(ErrCodeStopIteration, "iteration exhausted")
	ErrIndexOutOfRange   = New(ErrCodeIndexOutOfRange, "index out of range")
	ErrLengthUnavailable = New(ErrCodeLengthUnavailable, "length unavailable")
	ErrInvalidArgument   = New(ErrCodeInvalidArgument, "invalid argument")
	ErrInvalidState      = New(ErrCodeInvalidState, "invalid state")
)

// --- Constructors ---

// StopIteration creates the end-of-iteration signal.
func StopIteration() *AppError {
	return &AppError{Code: ErrCodeStopIteration, Message: "iteration exhausted"}
}

// IndexOutOfRange creates an error for a lookup outside [0, length).
// A negative length means the length is not known.
func IndexOutOfRange(index, length int) *AppError {
	details := map[string]any{"index": index}
	if length >= 0 {
		details["length"] = length
	}
	return &AppError{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("index %d out of range", index),
		Details: details,
	}
}

// LengthUnavailable creates an error for a subject without a length.
func LengthUnavailable(typeName string) *AppError {
	return &AppError{
		Code: ErrCodeLengthUnavailable, Message: fmt.Sprintf("%s has no length", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// InvalidArgument creates an error for an unusable argument.
func InvalidArgument(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument: %s", reason),
		Details: details,
	}
}

// InvalidState creates an error for an operation not valid in the current state.
func InvalidState(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: reason}
}

// EntropyUnavailable creates an error for a failed read from the host entropy source.
func EntropyUnavailable(cause error) *AppError {
	return &AppError{
		Code: ErrCodeEntropyUnavailable, Message: "unable to read host entropy source",
		Cause: cause,
	}
}

// Internal creates an error for an unexpected condition.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsStopIteration reports whether err signals iterator exhaustion.
func IsStopIteration(err error) bool {
	return stderrors.Is(err, ErrStopIteration)
}

// IsIndexOutOfRange reports whether err is an out-of-range lookup.
func IsIndexOutOfRange(err error) bool {
	return stderrors.Is(err, ErrIndexOutOfRange)
}

// IsLengthUnavailable reports whether err reports a missing length.
func IsLengthUnavailable(err error) bool {
	return stderrors.Is(err, ErrLengthUnavailable)
}
