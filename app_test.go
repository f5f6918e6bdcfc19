package atlas

import (
	"context"
	"sync"
	"testing"

	"github.com/nodejs-spain/atlas.js/component"
	"github.com/nodejs-spain/atlas.js/config"
	"github.com/nodejs-spain/atlas.js/errors"
	"github.com/nodejs-spain/atlas.js/logger"
)

// recorder collects lifecycle call labels in order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(label string) {
	r.mu.Lock()
	r.calls = append(r.calls, label)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recorder) index(label string) int {
	for i, call := range r.snapshot() {
		if call == label {
			return i
		}
	}
	return -1
}

// fakeComp records starts and stops and can fail either.
type fakeComp struct {
	rec      *recorder
	name     string
	startErr error
	stopErr  error
}

func (f *fakeComp) Start(ctx context.Context) error {
	f.rec.add(f.name + ":start")
	return f.startErr
}

func (f *fakeComp) Stop(ctx context.Context) error {
	f.rec.add(f.name + ":stop")
	return f.stopErr
}

// fakeObserver is a hook instance that records lifecycle events.
type fakeObserver struct {
	fakeComp
}

func (f *fakeObserver) OnAppEvent(ctx context.Context, event component.Event) error {
	f.rec.add(f.name + ":" + string(event))
	return nil
}

func compDef(rec *recorder, name string, startErr, stopErr error) component.Definition {
	return component.Definition{
		New: func(cfg map[string]any, deps component.Deps) (any, error) {
			rec.add(name + ":new")
			return &fakeComp{rec: rec, name: name, startErr: startErr, stopErr: stopErr}, nil
		},
	}
}

func hookDef(rec *recorder, name string) component.Definition {
	return component.Definition{
		New: func(cfg map[string]any, deps component.Deps) (any, error) {
			rec.add(name + ":new")
			return &fakeObserver{fakeComp{rec: rec, name: name}}, nil
		},
		Observes: component.ObserveApp,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := New("test", "/srv/app", nil, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	return app
}

func TestNewRequiresEnvAndRoot(t *testing.T) {
	if _, err := New("", "/srv/app", nil); err == nil {
		t.Error("expected missing env to fail")
	}
	if _, err := New("test", "", nil); err == nil {
		t.Error("expected missing root to fail")
	}
}

func TestNewAppliesConfigDefaults(t *testing.T) {
	app, err := New("test", "/srv/app", &config.Config{}, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if app.Env() != "test" || app.Root() != "/srv/app" {
		t.Errorf("unexpected env/root: %q %q", app.Env(), app.Root())
	}
	if app.ID() == "" {
		t.Error("expected a generated instance id")
	}
}

func TestChainedRegistrationErrorSurfacedByPrepare(t *testing.T) {
	rec := &recorder{}
	app := newTestApp(t)
	app.Service("db", compDef(rec, "db", nil, nil)).
		Service("db", compDef(rec, "dup", nil, nil)).
		Service("api", compDef(rec, "api", nil, nil))

	err := app.Prepare(context.Background())
	if err == nil {
		t.Fatal("expected duplicate registration to surface from Prepare")
	}
	if !errors.IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
	if len(rec.snapshot()) != 0 {
		t.Errorf("expected no factory to run, got %v", rec.snapshot())
	}
}

func TestRegistrationAfterPrepareRejected(t *testing.T) {
	rec := &recorder{}
	app := newTestApp(t)
	app.Service("db", compDef(rec, "db", nil, nil))
	if err := app.Prepare(context.Background()); err != nil {
		t.Fatal(err)
	}

	app.Service("late", compDef(rec, "late", nil, nil))
	if err := app.Prepare(context.Background()); err == nil {
		t.Error("expected late registration to surface from the next Prepare")
	}
}

func TestConfigOverridesReachFactories(t *testing.T) {
	rec := &recorder{}
	cfg := &config.Config{
		Services: map[string]map[string]any{"db": {"port": 6543}},
	}
	app, err := New("test", "/srv/app", cfg, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatal(err)
	}

	var seen map[string]any
	app.Service("db", component.Definition{
		New: func(c map[string]any, deps component.Deps) (any, error) {
			seen = c
			return &fakeComp{rec: rec, name: "db"}, nil
		},
		Defaults: map[string]any{"host": "localhost", "port": 5432},
	})

	if err := app.Prepare(context.Background()); err != nil {
		t.Fatal(err)
	}
	if seen["host"] != "localhost" || seen["port"] != 6543 {
		t.Errorf("unexpected merged config %v", seen)
	}
}

func TestPublicSurface(t *testing.T) {
	rec := &recorder{}
	app := newTestApp(t)
	app.Service("db", compDef(rec, "db", nil, nil)).
		Action("migrate", compDef(rec, "migrate", nil, nil)).
		Service("secret", component.Definition{
			New:      func(map[string]any, component.Deps) (any, error) { return &fakeComp{rec: rec, name: "secret"}, nil },
			Internal: true,
		})

	if err := app.Prepare(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, ok := app.GetService("db"); !ok {
		t.Error("expected db on the service surface")
	}
	if _, ok := app.GetAction("migrate"); !ok {
		t.Error("expected migrate on the action surface")
	}
	if _, ok := app.GetService("secret"); ok {
		t.Error("expected internal service to be kept off the surface")
	}
	if len(app.Services()) != 1 || len(app.Actions()) != 1 {
		t.Errorf("unexpected surface sizes: %d services, %d actions", len(app.Services()), len(app.Actions()))
	}
}
