// Package logging builds the slog loggers used across subtract.
//
// Two output formats exist: a compact console format for interactive use
// and JSON for machine consumption. Helpers mirror the slog attribute
// constructors so call sites stay terse, and NewComponentLogger stamps a
// component attribute on every record a subsystem emits.
package logging
