// Package errors provides the error kinds shared by the runtime core.
//
// Every error produced by vmcore is an *AppError carrying a machine-readable
// ErrorCode. Consumers branch on the code, never on the message:
//
//	v, err := it.Next()
//	if errors.IsStopIteration(err) {
//	    // normal end of iteration
//	}
//
// AppError implements Is by code, so the package sentinels work with the
// standard library errors.Is even when the error has been wrapped.
package errors
