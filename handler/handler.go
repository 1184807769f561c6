package handler

import (
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	createFood := handler.HandlerFunc[handler.Context, Food](
//		func(ctx handler.Context, food Food) handler.Response {
//			return handler.JSON(food)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Render errors are passed to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
// Binding failures from ValidatedJSON arrive as *RequestError.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
//
// Example decorator rejecting requests during maintenance:
//
//	func Maintenance[C handler.Context, R any](on func() bool) handler.Decorator[C, R] {
//		return func(next handler.HandlerFunc[C, R]) handler.HandlerFunc[C, R] {
//			return func(ctx C, req R) handler.Response {
//				if on() {
//					return handler.JSON(handler.ErrServiceUnavailable)
//				}
//				return next(ctx, req)
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder sets the request binder, replacing any set before.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders sets multiple request binders that will be applied in order.
// The first failing binder stops the request.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// WithJSON binds the request body with the validated JSON extractor.
// A nil cfg resolves from the request context, then the defaults.
func WithJSON[C Context, R any](cfg *JSONConfig) WrapOption[C, R] {
	return WithBinder[C, R](ValidatedJSON(cfg))
}

// defaultErrorHandler renders errors as JSON reports.
// A *RequestError renders its own report with 400, an HTTPError renders
// {"error": [key]} with its code, anything else is a 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	_ = classifyError(err).response.Render(ctx.ResponseWriter(), ctx.Request())
}

// defaultContextFactory returns NewContext as a C.
// Panics when C is a custom context type; use WithContextFactory for those.
func defaultContextFactory[C Context](w http.ResponseWriter, r *http.Request) C {
	if c, ok := NewContext(w, r).(C); ok {
		return c
	}
	panic("handler: cannot use default context factory with custom context type, provide WithContextFactory")
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Example:
//
//	r.Post("/foods", handler.Wrap(createFood,
//		handler.WithJSON[handler.Context, Food](nil),
//		handler.WithErrorHandler[handler.Context, Food](handler.NewErrorHandler(log)),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler:   defaultErrorHandler[C],
		contextFactory: defaultContextFactory[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// First decorator ends up outermost
	next := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		next = cfg.decorators[i](next)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := next(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
