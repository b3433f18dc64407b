// Package logging assembles the structured slog loggers used across ludex
// commands and build phases.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes the standardized field keys so phase code
// tags log lines with the same component, phase, and platform shapes
// everywhere. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
