package component

import "context"

// Kind distinguishes the three component families the orchestrator manages.
type Kind string

const (
	KindHook    Kind = "hook"
	KindService Kind = "service"
	KindAction  Kind = "action"
)

func (k Kind) String() string { return string(k) }

// State tracks where a container is in its lifecycle.
type State int

const (
	StateRegistered State = iota
	StatePrepared
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRegistered:
		return "registered"
	case StatePrepared:
		return "prepared"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// ObserveApp is the reserved observation target. A hook declaring it enrolls
// as an application observer and receives lifecycle events.
const ObserveApp = "app"

// Factory constructs a component instance from its merged configuration and
// resolved collaborators.
type Factory func(cfg map[string]any, deps Deps) (any, error)

// Definition describes a component before it is instantiated.
type Definition struct {
	// New builds the instance. Required.
	New Factory

	// Defaults is the configuration layered under per-alias overrides.
	Defaults map[string]any

	// Requires names the hooks this component needs. Each name resolves
	// through the registration's alias bindings, falling back to the name
	// itself.
	Requires []string

	// Observes names the alias this hook watches. Hooks must declare it;
	// the reserved ObserveApp target enrolls the hook as an observer.
	Observes string

	// Internal components are kept off the public service/action surface.
	Internal bool
}

// Starter is implemented by instances that do work when the application
// starts.
type Starter interface {
	Start(ctx context.Context) error
}

// Stopper is implemented by instances that release resources when the
// application stops.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Event is an application lifecycle notification delivered to observers.
type Event string

const (
	EventAfterPrepare Event = "afterPrepare"
	EventBeforeStart  Event = "beforeStart"
	EventAfterStart   Event = "afterStart"
	EventBeforeStop   Event = "beforeStop"
	EventAfterStop    Event = "afterStop"
)

// Observer is implemented by hook instances observing ObserveApp. Events are
// delivered sequentially in the hooks' registration order.
type Observer interface {
	OnAppEvent(ctx context.Context, event Event) error
}
