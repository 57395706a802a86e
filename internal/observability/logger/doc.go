// Package logger centralizes structured logging for the service.
//
// It wraps go.uber.org/zap behind a process-wide singleton plus helpers to
// carry a request-scoped logger through context.Context. Handlers and
// repositories should prefer logger.From(ctx) so every line carries the
// request fields injected by the HTTP middleware.
package logger
