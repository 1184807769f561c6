package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validjson/pkg/logger"
	"github.com/dmitrymomot/validjson/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Kind       string
	LogLevel   slog.Level
	response   Response
}

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps an error to its status code and response body.
// Request errors take precedence over HTTP errors wrapped inside them.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Kind:       ErrInternalServerError.Key,
		response:   ErrInternalServerError,
	}

	var reqErr *RequestError
	var httpErr HTTPError
	switch {
	case errors.As(err, &reqErr):
		info.StatusCode = reqErr.StatusCode()
		info.Kind = reqErr.Kind.String()
		info.response = reqErr
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Kind = httpErr.Key
		info.response = httpErr
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// logError logs the error with request context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		slog.String("kind", info.Kind),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that renders like the default
// one and logs every error: client errors at warn, server errors at error.
// Configure this once in main.go and pass to all handlers.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		if renderErr := info.response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
