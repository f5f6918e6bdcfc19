package component

import (
	"context"
	"sync"

	"github.com/nodejs-spain/atlas.js/config"
	"github.com/nodejs-spain/atlas.js/errors"
	"github.com/nodejs-spain/atlas.js/logger"
)

// Container wraps one registered component and tracks its lifecycle state.
// All lifecycle methods are safe for concurrent use; the orchestrator
// prepares and starts containers from multiple goroutines.
type Container struct {
	kind      Kind
	alias     string
	def       Definition
	bindings  map[string]string
	overrides map[string]any

	mu       sync.Mutex
	state    State
	instance any
}

func newContainer(kind Kind, alias string, def Definition, bindings map[string]string, overrides map[string]any) *Container {
	return &Container{
		kind:      kind,
		alias:     alias,
		def:       def,
		bindings:  bindings,
		overrides: overrides,
		state:     StateRegistered,
	}
}

func (c *Container) Kind() Kind    { return c.kind }
func (c *Container) Alias() string { return c.alias }

// Observes returns the declared observation target, empty for non-hooks and
// for hooks that failed to declare one.
func (c *Container) Observes() string { return c.def.Observes }

// Internal reports whether the component is excluded from the public
// service/action surface.
func (c *Container) Internal() bool { return c.def.Internal }

// State returns the container's current lifecycle state.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Instance returns the prepared component instance, or false when the
// container has not been prepared or was stopped.
func (c *Container) Instance() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.instance == nil {
		return nil, false
	}
	return c.instance, true
}

// Prepare resolves declared dependencies, merges configuration and invokes
// the factory. Preparing an already prepared or started container is a
// no-op returning the existing instance. A stopped container prepares
// afresh.
func (c *Container) Prepare(ctx context.Context, rc ResolveContext, log *logger.Logger) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StatePrepared || c.state == StateStarted {
		return c.instance, nil
	}

	for _, name := range c.def.Requires {
		target := name
		if bound, ok := c.bindings[name]; ok {
			target = bound
		}
		if _, ok := rc.Hook(target); !ok {
			return nil, errors.UnknownDependency(c.kind.String(), c.alias, name, target)
		}
	}

	cfg := config.Merge(c.def.Defaults, c.overrides)
	deps := Deps{
		Logger:   log.WithComponent(c.kind.String(), c.alias),
		bindings: c.bindings,
		hooks:    rc,
	}

	instance, err := c.def.New(cfg, deps)
	if err != nil {
		return nil, err
	}

	c.instance = instance
	c.state = StatePrepared
	return instance, nil
}

// Start transitions a prepared container to started. Starting an already
// started container is a no-op; starting an unprepared one is an error.
// Instances without a Start method transition immediately.
func (c *Container) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStarted {
		return nil
	}
	if c.state != StatePrepared {
		return errors.NotPrepared(c.kind.String(), c.alias)
	}

	if starter, ok := c.instance.(Starter); ok {
		if err := starter.Start(ctx); err != nil {
			return err
		}
	}
	c.state = StateStarted
	return nil
}

// Stop transitions the container to stopped and discards the instance so a
// later Prepare constructs a fresh one. Stopping a container that was never
// prepared is a no-op. The instance's Stop error, if any, is returned after
// the state is reset.
func (c *Container) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePrepared && c.state != StateStarted {
		return nil
	}

	var err error
	if stopper, ok := c.instance.(Stopper); ok {
		err = stopper.Stop(ctx)
	}
	c.instance = nil
	c.state = StateStopped
	return err
}
