package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Filesystem errors.

	// CodeIO indicates a filesystem operation failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeUnsupported indicates the backing filesystem cannot perform the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// Caller errors.

	// CodeLogic indicates a violated precondition, such as creating a symlink
	// over an existing non-symlink entry.
	CodeLogic ErrorCode = "LOGIC_ERROR"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Content errors.

	// CodeDecodeFailed indicates file content could not be decoded (INI, JSON).
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// CodeEncodeFailed indicates in-memory data could not be encoded.
	CodeEncodeFailed ErrorCode = "ENCODE_FAILED"

	// Execution errors.

	// CodeExecutionFailed indicates an external command (e.g. tar) failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
