package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a ResourceError.
//
// The code is taken from the outermost ResourceError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeIO {
//	    // report filesystem failure
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var resErr ResourceError
	if stderrors.As(err, &resErr) {
		return resErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether any ResourceError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if resErr, ok := err.(ResourceError); ok && resErr.Code() == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsIO reports whether err is (or wraps) a filesystem failure.
func IsIO(err error) bool {
	return HasCode(err, CodeIO)
}

// IsLogic reports whether err is (or wraps) a precondition violation.
func IsLogic(err error) bool {
	return HasCode(err, CodeLogic)
}
