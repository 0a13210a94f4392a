// Package logger builds the slog loggers used across fieldguard.
//
// New creates a *slog.Logger configured by functional options: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that inject request-scoped values on every record. The handler is
// wrapped in a ContextHandler that runs the extractors before delegating.
//
// Attribute helpers (Field, Pattern, Outcome, Error, …) keep key names
// consistent between the validation engine, the HTTP adapter and the CLI.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "fieldguard"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "field resolved", logger.Field("age"), logger.Outcome("valid"))
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
