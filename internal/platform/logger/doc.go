// Package logger provides structured logging functionality for the
// application, built on log/slog. It configures the process-wide default
// logger and offers helpers for carrying request-scoped loggers through
// context.Context.
package logger
