// Package atlas is a process-lifecycle orchestrator for pluggable-component
// applications. Components of three kinds (hooks, services, actions) are
// registered under aliases, resolved against each other by alias binding,
// and driven through a uniform prepare, start, stop lifecycle.
//
// Services start strictly sequentially in registration order and stop in
// reverse; hooks and actions fan out concurrently. A service failing to
// start rolls back everything already activated and the caller sees the
// original error. Hooks observing the application receive lifecycle events.
//
//	app, err := atlas.New("production", "/srv/app", cfg)
//	app.Hook("telemetry", observability.NewLifecycleHook()).
//	    Service("db", database.Component()).
//	    Service("api", api.Component(), atlas.WithAliases(map[string]string{"db": "db"}))
//	if err := app.Start(ctx); err != nil { ... }
package atlas
