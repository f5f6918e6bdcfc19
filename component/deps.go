package component

import "github.com/nodejs-spain/atlas.js/logger"

// ResolveContext looks up hook containers by alias. The catalog implements
// it; tests may substitute their own.
type ResolveContext interface {
	Hook(alias string) (*Container, bool)
}

// Deps carries the collaborators a factory may use: a component-scoped
// logger and alias-bound access to the hooks the component declared.
type Deps struct {
	// Logger is scoped to the component's kind and alias.
	Logger *logger.Logger

	bindings map[string]string
	hooks    ResolveContext
}

// Hook resolves a declared dependency name to its container. The name maps
// through the registration's alias bindings first, then is tried verbatim.
func (d Deps) Hook(name string) (*Container, bool) {
	if d.hooks == nil {
		return nil, false
	}
	target := name
	if bound, ok := d.bindings[name]; ok {
		target = bound
	}
	return d.hooks.Hook(target)
}
