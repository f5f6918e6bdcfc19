package atlas

import "github.com/nodejs-spain/atlas.js/logger"

type options struct {
	logger *logger.Logger
}

// Option customizes orchestrator construction.
type Option func(*options)

// WithLogger replaces the logger built from configuration.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type registerOptions struct {
	bindings map[string]string
}

// RegisterOption customizes one component registration.
type RegisterOption func(*registerOptions)

// WithAliases binds the component's declared dependency names to concrete
// hook aliases. Unbound names resolve verbatim.
func WithAliases(bindings map[string]string) RegisterOption {
	return func(ro *registerOptions) { ro.bindings = bindings }
}

func resolveRegisterOptions(opts []RegisterOption) registerOptions {
	var ro registerOptions
	for _, opt := range opts {
		opt(&ro)
	}
	return ro
}
