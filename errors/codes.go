package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (fatal at construction)
const (
	// ErrCodeInvalidFilter indicates a filter value could not be resolved
	// against its category's enumerated constants.
	ErrCodeInvalidFilter ErrorCode = "INVALID_FILTER"
	// ErrCodeUnknownCategory indicates an unknown catalog category name.
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"
	// ErrCodeUnknownMethod indicates an unknown synthetic generation method.
	ErrCodeUnknownMethod ErrorCode = "UNKNOWN_METHOD"
	// ErrCodeInvalidInput indicates structurally invalid configuration.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required configuration field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Runtime errors
const (
	// ErrCodeEmptyPool indicates a candidate pool has no entries to pick from.
	ErrCodeEmptyPool ErrorCode = "EMPTY_POOL"
	// ErrCodeNotRegistered indicates a provider factory is not registered.
	ErrCodeNotRegistered ErrorCode = "PROVIDER_NOT_REGISTERED"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
