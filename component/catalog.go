package component

import (
	"github.com/nodejs-spain/atlas.js/errors"
	"github.com/nodejs-spain/atlas.js/validation"
)

// registry keeps containers of one kind in registration order with O(1)
// alias lookup.
type registry struct {
	kind    Kind
	entries []*Container
	lookup  map[string]*Container
}

func newRegistry(kind Kind) *registry {
	return &registry{kind: kind, lookup: make(map[string]*Container)}
}

func (r *registry) add(alias string, def Definition, bindings map[string]string, overrides map[string]any) (*Container, error) {
	if err := validation.Alias(alias); err != nil {
		return nil, err
	}
	if def.New == nil {
		return nil, errors.MissingConstructor(r.kind.String(), alias)
	}
	if _, exists := r.lookup[alias]; exists {
		return nil, errors.DuplicateAlias(r.kind.String(), alias)
	}
	for _, target := range bindings {
		if err := validation.Alias(target); err != nil {
			return nil, err
		}
	}

	c := newContainer(r.kind, alias, def, bindings, overrides)
	r.entries = append(r.entries, c)
	r.lookup[alias] = c
	return c, nil
}

// Catalog holds one ordered registry per component kind. It is not safe for
// concurrent registration; the orchestrator registers before preparing.
type Catalog struct {
	hooks    *registry
	services *registry
	actions  *registry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		hooks:    newRegistry(KindHook),
		services: newRegistry(KindService),
		actions:  newRegistry(KindAction),
	}
}

// Register validates and stores a component under its kind. It fails on an
// invalid alias, a missing constructor, or a duplicate alias within the
// kind.
func (cat *Catalog) Register(kind Kind, alias string, def Definition, bindings map[string]string, overrides map[string]any) (*Container, error) {
	switch kind {
	case KindHook:
		return cat.hooks.add(alias, def, bindings, overrides)
	case KindService:
		return cat.services.add(alias, def, bindings, overrides)
	case KindAction:
		return cat.actions.add(alias, def, bindings, overrides)
	}
	return nil, errors.Config("unknown component kind %q", kind)
}

// Hooks returns hook containers in registration order.
func (cat *Catalog) Hooks() []*Container { return cat.hooks.entries }

// Services returns service containers in registration order.
func (cat *Catalog) Services() []*Container { return cat.services.entries }

// Actions returns action containers in registration order.
func (cat *Catalog) Actions() []*Container { return cat.actions.entries }

// Hook looks up a hook container by alias. Satisfies ResolveContext.
func (cat *Catalog) Hook(alias string) (*Container, bool) {
	c, ok := cat.hooks.lookup[alias]
	return c, ok
}

// Service looks up a service container by alias.
func (cat *Catalog) Service(alias string) (*Container, bool) {
	c, ok := cat.services.lookup[alias]
	return c, ok
}

// Action looks up an action container by alias.
func (cat *Catalog) Action(alias string) (*Container, bool) {
	c, ok := cat.actions.lookup[alias]
	return c, ok
}
