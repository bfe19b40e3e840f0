package errors

import "fmt"

// New creates a new ResourceError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeLogic, "location already exists")
func New(code ErrorCode, message string) ResourceError {
	return &resourceError{
		code:    code,
		message: message,
	}
}

// Newf creates a new ResourceError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unsupported pattern flag %q", flag)
func Newf(code ErrorCode, format string, args ...interface{}) ResourceError {
	return &resourceError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
