package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConfig indicates invalid registration or configuration input:
	// duplicate aliases, malformed definitions, missing declarations.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeLifecycle indicates a phase was driven out of order, such as
	// starting a container that was never prepared.
	ErrCodeLifecycle ErrorCode = "LIFECYCLE_ERROR"
	// ErrCodeInternal indicates a framework bug rather than caller error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
