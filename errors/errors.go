package errors

import (
	stderrors "errors"
	"fmt"
)

// FrameworkError is the unified error type for atlas failures.
type FrameworkError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *FrameworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *FrameworkError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *FrameworkError) WithCause(cause error) *FrameworkError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *FrameworkError) WithDetail(key string, value any) *FrameworkError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new FrameworkError.
func New(code ErrorCode, message string) *FrameworkError {
	return &FrameworkError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// Config creates a configuration error with a formatted message.
func Config(format string, args ...any) *FrameworkError {
	return &FrameworkError{Code: ErrCodeConfig, Message: fmt.Sprintf(format, args...)}
}

// DuplicateAlias reports a second registration under an alias already taken
// within the same kind.
func DuplicateAlias(kind, alias string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeConfig,
		Message: fmt.Sprintf("%s %q is already registered", kind, alias),
		Details: map[string]any{"kind": kind, "alias": alias},
	}
}

// MissingConstructor reports a definition registered without a constructor.
func MissingConstructor(kind, alias string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeConfig,
		Message: fmt.Sprintf("%s %q has no constructor", kind, alias),
		Details: map[string]any{"kind": kind, "alias": alias},
	}
}

// MissingObserves reports a hook whose definition lacks the required
// observes declaration.
func MissingObserves(alias string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeConfig,
		Message: fmt.Sprintf("hook %q does not declare what it observes", alias),
		Details: map[string]any{"kind": "hook", "alias": alias},
	}
}

// UnknownDependency reports a required dependency that resolved to no
// registered component.
func UnknownDependency(kind, alias, dependency, target string) *FrameworkError {
	return &FrameworkError{
		Code: ErrCodeConfig,
		Message: fmt.Sprintf("%s %q requires %q (alias %q) which is not registered",
			kind, alias, dependency, target),
		Details: map[string]any{
			"kind": kind, "alias": alias,
			"dependency": dependency, "target": target,
		},
	}
}

// NotPrepared reports a lifecycle call on a container that was never prepared.
func NotPrepared(kind, alias string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeLifecycle,
		Message: fmt.Sprintf("%s %q must be prepared before it is started", kind, alias),
		Details: map[string]any{"kind": kind, "alias": alias},
	}
}

// IsConfig returns true if err is a FrameworkError in the configuration
// category.
func IsConfig(err error) bool {
	var fe *FrameworkError
	return stderrors.As(err, &fe) && fe.Code == ErrCodeConfig
}

// IsLifecycle returns true if err is a FrameworkError in the lifecycle
// category.
func IsLifecycle(err error) bool {
	var fe *FrameworkError
	return stderrors.As(err, &fe) && fe.Code == ErrCodeLifecycle
}
