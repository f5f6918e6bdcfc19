// Package config defines the configuration object the atlas orchestrator
// consumes, together with the collaborator helpers around it: a deep-merge
// function for layering component defaults under per-alias overrides, and a
// file/env loader built on viper and godotenv.
//
// The orchestrator core only ever reads merged per-alias sections; it does
// no file I/O of its own. Hosts may build a Config by hand or via Load:
//
//	cfg, err := config.Load("production", "/srv/app")
//	app, err := atlas.New("production", "/srv/app", cfg)
package config
