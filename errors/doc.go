// Package errors provides the structured error type returned by every package
// in this module.
//
// Errors carry an ErrorCode for categorization, a human-readable message, an
// optional context map (for example the location a failing operation touched)
// and the wrapped cause. They remain fully compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap).
//
// # Error kinds
//
// Two codes matter most to callers of the resource API:
//
//   - CodeIO: a filesystem call failed (path not found, permission denied,
//     rename/copy/mkdir/rmdir failure, unreadable file).
//   - CodeLogic: a precondition was violated by the caller, e.g. creating a
//     symlink over an existing regular file or directory.
//
// Nothing in this module retries a failed operation; errors are surfaced to the
// caller as soon as they occur.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeLogic, "location already exists")
//	err := errors.Newf(errors.CodeInvalidInput, "invalid mode: %o", mode)
//
// Wrapping errors:
//
//	if err := fsys.Rename(from, to); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to move resource")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "location", path)
//
// Inspecting errors:
//
//	if errors.IsLogic(err) {
//	    // caller bug, do not retry
//	}
package errors
