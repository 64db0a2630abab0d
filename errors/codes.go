package errors

// ErrorCode represents a machine-readable error kind.
type ErrorCode string

// Iteration control
const (
	// ErrCodeStopIteration signals that an iterator has no further values.
	// It is a normal control signal, not a failure.
	ErrCodeStopIteration ErrorCode = "ITERATION_EXHAUSTED"
	// ErrCodeIndexOutOfRange indicates an indexed lookup past either end of a sequence.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeLengthUnavailable indicates the subject has no length capability.
	ErrCodeLengthUnavailable ErrorCode = "LENGTH_UNAVAILABLE"
)

// Argument and state errors
const (
	// ErrCodeInvalidArgument indicates a caller passed an unusable argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidState indicates the operation is not valid in the current state.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Internal errors
const (
	// ErrCodeEntropyUnavailable indicates the host entropy source could not be read.
	ErrCodeEntropyUnavailable ErrorCode = "ENTROPY_UNAVAILABLE"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var controlCodes = map[ErrorCode]bool{
	ErrCodeStopIteration: true,
}

// IsControlCode reports whether the code is a control-flow signal rather than a failure.
func IsControlCode(code ErrorCode) bool {
	return controlCodes[code]
}
