// Package logger builds the application's slog.Logger: JSON or text on
// stdout, request-scoped attributes pulled from the context by
// ContextExtractor funcs, and optional forwarding to Sentry.
package logger
