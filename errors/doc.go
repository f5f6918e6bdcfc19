// Package errors provides the structured error type used across atlas.
//
// Every failure the framework itself produces is a *FrameworkError with a
// machine-readable code, a human-readable message, and optional details
// identifying the offending component. Component authors are free to return
// plain errors from their own lifecycle methods; the orchestrator wraps
// nothing and propagates those verbatim.
//
//	err := errors.DuplicateAlias("service", "database")
//	var fe *errors.FrameworkError
//	if stderrors.As(err, &fe) {
//	    fmt.Println(fe.Code, fe.Details["alias"])
//	}
package errors
