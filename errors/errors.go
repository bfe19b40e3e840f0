package errors

import "fmt"

// ResourceError extends the standard error interface with structured information.
//
// It provides an error code for categorization, contextual metadata, and
// compatibility with standard library error handling (errors.Is, errors.As,
// errors.Unwrap).
type ResourceError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// resourceError is the concrete implementation of ResourceError.
// It is private to enforce construction through package functions.
type resourceError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *resourceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *resourceError) Code() ErrorCode {
	return e.code
}

func (e *resourceError) Message() string {
	return e.message
}

// Context returns a copy of the context map so callers cannot mutate the error.
func (e *resourceError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *resourceError) Unwrap() error {
	return e.cause
}
