package atlas

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nodejs-spain/atlas.js/component"
	"github.com/nodejs-spain/atlas.js/errors"
	"github.com/nodejs-spain/atlas.js/logger"
)

// Prepare instantiates every registered component and publishes service and
// action instances on the public surface. It is idempotent: a prepared
// orchestrator returns immediately. A recorded registration failure is
// surfaced here before any component is touched.
//
// Hooks are scanned first; one lacking its observation target fails the
// phase before any component is prepared. Within each kind, preparation
// fans out concurrently.
func (a *App) Prepare(ctx context.Context) error {
	if a.regErr != nil {
		return a.regErr
	}
	if a.prepared {
		return nil
	}

	a.observers = a.observers[:0]
	for _, hook := range a.catalog.Hooks() {
		if hook.Observes() == "" {
			return errors.MissingObserves(hook.Alias())
		}
		if hook.Observes() == component.ObserveApp {
			a.observers = append(a.observers, hook)
		}
	}

	a.log.Info("preparing application", logger.Fields(
		logger.FieldPhase, "prepare",
		logger.FieldCount, len(a.catalog.Hooks())+len(a.catalog.Services())+len(a.catalog.Actions()),
	))

	if err := a.prepareBatch(ctx, a.catalog.Hooks()); err != nil {
		return err
	}
	if err := a.prepareBatch(ctx, a.catalog.Actions()); err != nil {
		return err
	}
	if err := a.prepareBatch(ctx, a.catalog.Services()); err != nil {
		return err
	}

	a.prepared = true
	return a.notify(ctx, a.observerInstances(), component.EventAfterPrepare)
}

// Start activates the application. It absorbs Prepare, fans hook and action
// starts out concurrently, then starts services strictly sequentially in
// registration order so later services may assume earlier ones are live.
//
// When a service fails to start the whole orchestrator is stopped as a
// rollback; a rollback failure is logged at fatal severity and the caller
// always receives the original start error.
func (a *App) Start(ctx context.Context) error {
	if err := a.Prepare(ctx); err != nil {
		return err
	}
	if a.started {
		return nil
	}

	obs := a.observerInstances()
	if err := a.notify(ctx, obs, component.EventBeforeStart); err != nil {
		return err
	}

	var g errgroup.Group
	for _, c := range a.catalog.Hooks() {
		c := c
		g.Go(func() error { return c.Start(ctx) })
	}
	for _, c := range a.catalog.Actions() {
		c := c
		g.Go(func() error { return c.Start(ctx) })
	}
	if err := g.Wait(); err != nil {
		a.log.Error("start failed", logger.ErrorFields("start", err))
		return err
	}

	for _, svc := range a.catalog.Services() {
		if err := svc.Start(ctx); err != nil {
			a.log.Error("service start failed, rolling back", map[string]interface{}{
				logger.FieldAlias: svc.Alias(),
				logger.FieldError: err.Error(),
			})
			if rbErr := a.Stop(ctx); rbErr != nil {
				a.log.Fatal("rollback failed", logger.ErrorFields("rollback", rbErr))
			}
			return err
		}
		a.log.Debug("service started", logger.Fields(logger.FieldAlias, svc.Alias()))
	}

	a.started = true
	a.log.Info("application started", logger.Fields(logger.FieldAppID, a.id))
	return a.notify(ctx, obs, component.EventAfterStart)
}

// Stop deactivates the application best-effort and resets it to the
// pre-prepared state. Hooks and actions stop concurrently, services
// strictly sequentially in reverse registration order, each removed from
// the public surface before its stop is attempted. Stop never halts early:
// every component gets its chance, and the most recent captured error is
// returned once the full sequence has run.
func (a *App) Stop(ctx context.Context) error {
	obs := a.observerInstances()

	var stopErr error
	if err := a.notify(ctx, obs, component.EventBeforeStop); err != nil {
		stopErr = err
	}

	var g errgroup.Group
	for _, c := range a.catalog.Hooks() {
		c := c
		g.Go(func() error { return c.Stop(ctx) })
	}
	for _, c := range a.catalog.Actions() {
		c := c
		g.Go(func() error { return c.Stop(ctx) })
	}
	if err := g.Wait(); err != nil {
		a.log.Error("stop failed", logger.ErrorFields("stop", err))
		stopErr = err
	}

	services := a.catalog.Services()
	for i := len(services) - 1; i >= 0; i-- {
		svc := services[i]
		a.removeService(svc.Alias())
		if err := svc.Stop(ctx); err != nil {
			a.log.Error("service stop failed", map[string]interface{}{
				logger.FieldAlias: svc.Alias(),
				logger.FieldError: err.Error(),
			})
			stopErr = err
		}
	}

	a.clearSurfaces()
	a.started = false
	a.prepared = false
	a.observers = nil

	if err := a.notify(ctx, obs, component.EventAfterStop); err != nil && stopErr == nil {
		stopErr = err
	}

	a.log.Info("application stopped", logger.Fields(logger.FieldAppID, a.id))
	return stopErr
}

// observerInstances snapshots the live observer instances. Stop takes the
// snapshot up front so afterStop still reaches observers whose containers
// were already reset.
func (a *App) observerInstances() []component.Observer {
	out := make([]component.Observer, 0, len(a.observers))
	for _, c := range a.observers {
		inst, ok := c.Instance()
		if !ok {
			continue
		}
		if o, ok := inst.(component.Observer); ok {
			out = append(out, o)
		}
	}
	return out
}

// notify dispatches one lifecycle event to observers sequentially, in hook
// registration order.
func (a *App) notify(ctx context.Context, obs []component.Observer, event component.Event) error {
	for _, o := range obs {
		if err := o.OnAppEvent(ctx, event); err != nil {
			a.log.Error("observer rejected lifecycle event", map[string]interface{}{
				logger.FieldEvent: string(event),
				logger.FieldError: err.Error(),
			})
			return err
		}
	}
	return nil
}

func (a *App) prepareBatch(ctx context.Context, batch []*component.Container) error {
	var g errgroup.Group
	for _, c := range batch {
		c := c
		g.Go(func() error {
			inst, err := c.Prepare(ctx, a.catalog, a.log)
			if err != nil {
				a.log.Error("prepare failed", map[string]interface{}{
					logger.FieldKind:  c.Kind().String(),
					logger.FieldAlias: c.Alias(),
					logger.FieldError: err.Error(),
				})
				return err
			}
			if c.Internal() {
				return nil
			}
			switch c.Kind() {
			case component.KindService:
				a.publishService(c.Alias(), inst)
			case component.KindAction:
				a.publishAction(c.Alias(), inst)
			}
			return nil
		})
	}
	return g.Wait()
}
