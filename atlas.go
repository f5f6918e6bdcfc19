package atlas

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nodejs-spain/atlas.js/component"
	"github.com/nodejs-spain/atlas.js/config"
	"github.com/nodejs-spain/atlas.js/errors"
	"github.com/nodejs-spain/atlas.js/logger"
	"github.com/nodejs-spain/atlas.js/version"
)

// App is the lifecycle orchestrator. It owns the component catalog, the
// observer registry and the public service/action surfaces, and drives
// every registered component through prepare, start and stop.
//
// An App is meant to live as long as the process and be driven by a single
// owner; Prepare, Start and Stop must not be called concurrently with each
// other.
type App struct {
	env  string
	root string
	id   string

	cfg     *config.Config
	log     *logger.Logger
	catalog *component.Catalog

	prepared  bool
	started   bool
	regErr    error
	observers []*component.Container

	surfaceMu sync.RWMutex
	services  map[string]any
	actions   map[string]any
}

// New creates an orchestrator for one environment rooted at root. Both are
// required. A nil cfg gets defaults applied.
func New(env, root string, cfg *config.Config, opts ...Option) (*App, error) {
	if env == "" {
		return nil, errors.Config("environment is required")
	}
	if root == "" {
		return nil, errors.Config("root path is required")
	}

	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		env:      env,
		root:     root,
		id:       uuid.NewString(),
		cfg:      cfg,
		catalog:  component.NewCatalog(),
		services: make(map[string]any),
		actions:  make(map[string]any),
	}

	o := resolveOptions(opts)
	if o.logger != nil {
		app.log = o.logger
	} else {
		app.log = logger.New(&cfg.Atlas.Log, cfg.Atlas.Log.Name)
	}

	app.log.Info("application created", map[string]interface{}{
		logger.FieldAppID:   app.id,
		logger.FieldEnv:     env,
		logger.FieldRoot:    root,
		logger.FieldVersion: version.Get().Version,
	})
	return app, nil
}

// Env returns the environment the orchestrator was created for.
func (a *App) Env() string { return a.env }

// Root returns the application root path.
func (a *App) Root() string { return a.root }

// ID returns the per-instance identifier.
func (a *App) ID() string { return a.id }

// Prepared reports whether the orchestrator is in the prepared state.
func (a *App) Prepared() bool { return a.prepared }

// Started reports whether the orchestrator is live.
func (a *App) Started() bool { return a.started }

// Logger returns the orchestrator's logger.
func (a *App) Logger() *logger.Logger { return a.log }

// Hook registers a hook component and returns the orchestrator for
// chaining. Registration failures are recorded and surfaced by the next
// Prepare.
func (a *App) Hook(alias string, def component.Definition, opts ...RegisterOption) *App {
	a.register(component.KindHook, alias, def, opts)
	return a
}

// Service registers a service component. Services start in registration
// order and stop in reverse.
func (a *App) Service(alias string, def component.Definition, opts ...RegisterOption) *App {
	a.register(component.KindService, alias, def, opts)
	return a
}

// Action registers an action component.
func (a *App) Action(alias string, def component.Definition, opts ...RegisterOption) *App {
	a.register(component.KindAction, alias, def, opts)
	return a
}

func (a *App) register(kind component.Kind, alias string, def component.Definition, opts []RegisterOption) {
	if a.regErr != nil {
		return
	}
	if a.prepared {
		a.regErr = errors.Config("cannot register %s %q after prepare", kind, alias)
		return
	}

	ro := resolveRegisterOptions(opts)
	overrides := a.cfg.Section(kind.String(), alias)

	if _, err := a.catalog.Register(kind, alias, def, ro.bindings, overrides); err != nil {
		a.regErr = err
		a.log.Error("registration failed", logger.ErrorFields("register", err))
		return
	}
	a.log.Debug("component registered", map[string]interface{}{
		logger.FieldKind:  kind.String(),
		logger.FieldAlias: alias,
	})
}
