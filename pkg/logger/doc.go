// Package logger builds slog loggers with functional options and keeps
// attribute names consistent across the service.
//
// New creates a *slog.Logger whose handler is wrapped in a
// LogHandlerDecorator. The decorator runs the registered ContextExtractor
// functions for every record, so request-scoped values such as the request
// id end up in the log without being passed around:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "goodfoods"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(r.Context(), "request error",
//	    logger.Error(err),
//	    logger.StatusCode(http.StatusBadRequest),
//	)
//
// Attribute helpers return an empty slog.Attr for nil errors and empty ids,
// which slog drops, so callers need no nil checks.
package logger
