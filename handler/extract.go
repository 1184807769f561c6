package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validjson/pkg/binder"
	"github.com/dmitrymomot/validjson/pkg/errtree"
	"github.com/dmitrymomot/validjson/pkg/logger"
	"github.com/dmitrymomot/validjson/pkg/requestid"
	"github.com/dmitrymomot/validjson/pkg/validator"
)

// ErrorHook translates a decoding failure into a custom error.
// Returning nil keeps the default RequestError.
type ErrorHook func(err error, r *http.Request) error

// Checker validates a decoded payload. The argument is a pointer to the
// decoded value. Errors built from errtree nodes keep their shape in the
// report; any other error is reported under "non_field_errors".
type Checker func(v any) error

// JSONConfig configures the validated JSON extractor.
// A JSONConfig is immutable once built and safe for concurrent use.
type JSONConfig struct {
	limit       int64
	contentType binder.ContentTypeFunc
	errorHook   ErrorHook
	checker     Checker
	strict      bool
	log         *slog.Logger
	decode      func(r *http.Request, v any) error
}

// JSONConfigOption configures a JSONConfig.
type JSONConfigOption func(*JSONConfig)

// WithLimit sets the maximum body size in bytes (default binder.DefaultJSONLimit).
// Panics for non-positive limits.
func WithLimit(n int64) JSONConfigOption {
	if n <= 0 {
		panic("handler.WithLimit: limit must be > 0")
	}
	return func(c *JSONConfig) { c.limit = n }
}

// WithContentType admits media types beyond application/json and "+json"
// types, which are always accepted. Requests without a Content-Type header
// are decoded as JSON either way.
func WithContentType(fn binder.ContentTypeFunc) JSONConfigOption {
	return func(c *JSONConfig) { c.contentType = fn }
}

// WithErrorHook sets a hook that replaces the error returned for decoding failures.
func WithErrorHook(hook ErrorHook) JSONConfigOption {
	return func(c *JSONConfig) { c.errorHook = hook }
}

// WithChecker replaces the payload checker (default validator.Validate).
//
// Example:
//
//	cfg := handler.NewJSONConfig(handler.WithChecker(validator.Struct))
func WithChecker(fn Checker) JSONConfigOption {
	return func(c *JSONConfig) {
		if fn != nil {
			c.checker = fn
		}
	}
}

// WithDisallowUnknownFields rejects payloads with fields the target type does not declare.
func WithDisallowUnknownFields() JSONConfigOption {
	return func(c *JSONConfig) { c.strict = true }
}

// WithLogger sets the logger used for rejected payloads (default slog.Default()).
func WithLogger(log *slog.Logger) JSONConfigOption {
	return func(c *JSONConfig) { c.log = log }
}

// NewJSONConfig builds an extractor configuration.
func NewJSONConfig(opts ...JSONConfigOption) *JSONConfig {
	cfg := &JSONConfig{
		limit:   binder.DefaultJSONLimit,
		checker: validator.Validate,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	bopts := []binder.JSONOption{
		binder.WithLimit(cfg.limit),
		binder.WithContentType(cfg.contentType),
	}
	if cfg.strict {
		bopts = append(bopts, binder.WithDisallowUnknownFields())
	}
	cfg.decode = binder.JSON(bopts...)

	return cfg
}

// Limit returns the maximum accepted body size in bytes.
func (c *JSONConfig) Limit() int64 {
	return c.limit
}

var (
	jsonConfigKey     = NewContextKey("json_config")
	defaultJSONConfig = NewJSONConfig()
)

// JSONConfigMiddleware makes cfg the extractor configuration for every
// request passing through it. Extractors called with a nil config use it.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(handler.JSONConfigMiddleware(handler.NewJSONConfig(handler.WithLimit(4096))))
func JSONConfigMiddleware(cfg *JSONConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg != nil {
				r = r.WithContext(context.WithValue(r.Context(), jsonConfigKey, cfg))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ConfigFromContext returns the extractor configuration stored by
// JSONConfigMiddleware, or nil if there is none.
func ConfigFromContext(r *http.Request) *JSONConfig {
	return ContextValue[*JSONConfig](r.Context(), jsonConfigKey)
}

// ExtractJSON decodes the request body into a T and checks it.
//
// The configuration is cfg when non-nil, otherwise the one stored in the
// request context, otherwise the defaults. Decoding failures are returned
// as a *RequestError of KindMalformed (or the error hook's result),
// constraint violations as a *RequestError of KindInvalid whose report is
// the flattened error tree.
//
// Example:
//
//	food, err := handler.ExtractJSON[Food](r, nil)
//	if err != nil {
//		var reqErr *handler.RequestError
//		if errors.As(err, &reqErr) {
//			_ = reqErr.Render(w, r)
//		}
//		return
//	}
func ExtractJSON[T any](r *http.Request, cfg *JSONConfig) (T, error) {
	var v T
	if err := resolveJSONConfig(r, cfg).extract(r, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ValidatedJSON returns a binder for Wrap that runs the JSON extractor.
//
// Example:
//
//	r.Post("/foods", handler.Wrap(createFood,
//		handler.WithBinder[handler.Context, Food](handler.ValidatedJSON(nil)),
//	))
func ValidatedJSON(cfg *JSONConfig) Bind {
	return func(r *http.Request, v any) error {
		return resolveJSONConfig(r, cfg).extract(r, v)
	}
}

func resolveJSONConfig(r *http.Request, cfg *JSONConfig) *JSONConfig {
	if cfg != nil {
		return cfg
	}
	if cfg := ConfigFromContext(r); cfg != nil {
		return cfg
	}
	return defaultJSONConfig
}

func (c *JSONConfig) extract(r *http.Request, v any) error {
	if err := c.decode(r, v); err != nil {
		c.logger().DebugContext(r.Context(), "failed to decode request payload",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Component("json_extractor"),
			logger.Event("decode_failed"),
		)
		if c.errorHook != nil {
			if hookErr := c.errorHook(err, r); hookErr != nil {
				return hookErr
			}
		}
		return malformed(err)
	}

	// A Validate method returning a nil *errtree.Keyed as error passes.
	if err := c.checker(v); err != nil && errtree.FromError(err) != nil {
		reqErr := invalid(err)
		c.logger().DebugContext(r.Context(), "request payload failed validation",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.ReportSize(len(reqErr.Report)),
			logger.Component("json_extractor"),
			logger.Event("validation_failed"),
		)
		return reqErr
	}

	return nil
}

func (c *JSONConfig) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}

// IsRequestError reports whether err is or wraps a *RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
