// Package logger provides structured logging for atlas, wrapping zerolog.
//
// The orchestrator builds its logger from the atlas-reserved config section;
// components receive a child logger tagged with their kind and alias.
//
//	log := logger.New(&logger.Config{Level: "debug"}, "atlas")
//	log.Info("service started", logger.Fields(logger.FieldAlias, "database"))
package logger
