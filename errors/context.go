package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new ResourceError with the context field added.
// Existing context fields are preserved.
//
// If err is not a ResourceError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeIO, "rename failed")
//	err = errors.WithContext(err, "location", "/tmp/a")
func WithContext(err error, key string, value interface{}) ResourceError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not a ResourceError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) ResourceError {
	if err == nil {
		return nil
	}

	var resErr ResourceError
	if !errors.As(err, &resErr) {
		resErr = &resourceError{
			code:    CodeUnknown,
			message: err.Error(),
			cause:   err,
		}
	}

	newContext := make(map[string]interface{})
	for k, v := range resErr.Context() {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &resourceError{
		code:    resErr.Code(),
		message: resErr.Message(),
		context: newContext,
		cause:   resErr.Unwrap(),
	}
}
