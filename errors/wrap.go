package errors

import "fmt"

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.Remove(path); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to remove directory")
//	}
func Wrap(err error, code ErrorCode, message string) ResourceError {
	if err == nil {
		return nil
	}

	return &resourceError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) ResourceError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeIO, "failed to move resource", map[string]interface{}{
//	    "source": from,
//	    "target": to,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) ResourceError {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &resourceError{
		code:    code,
		message: message,
		context: contextCopy,
		cause:   err,
	}
}
