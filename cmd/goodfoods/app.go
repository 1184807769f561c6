package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/dmitrymomot/validjson/handler"
	"github.com/dmitrymomot/validjson/pkg/environment"
	"github.com/dmitrymomot/validjson/pkg/httpserver"
	"github.com/dmitrymomot/validjson/pkg/requestid"
	"github.com/dmitrymomot/validjson/pkg/validator"
)

// newRouter builds the HTTP routes of the service.
func newRouter(cfg Config, log *slog.Logger) http.Handler {
	jsonOpts := []handler.JSONConfigOption{
		handler.WithLimit(cfg.JSONLimit),
		handler.WithLogger(log),
	}
	if cfg.JSONStrict {
		jsonOpts = append(jsonOpts, handler.WithDisallowUnknownFields())
	}
	tagged := handler.NewJSONConfig(append(jsonOpts, handler.WithChecker(validator.Struct))...)
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(environment.Middleware(cfg.Env))
	r.Use(handler.JSONConfigMiddleware(handler.NewJSONConfig(jsonOpts...)))
	if cfg.RateLimit > 0 {
		r.Use(httprate.Limit(cfg.RateLimit, cfg.RateWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				_ = handler.ErrTooManyRequests.Render(w, r)
			}),
		))
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	r.Post("/foods", handler.Wrap(createFood,
		handler.WithJSON[handler.Context, Food](nil),
		handler.WithErrorHandler[handler.Context, Food](errorHandler),
	))
	r.Post("/foods/tagged", handler.Wrap(createTaggedFood,
		handler.WithJSON[handler.Context, TaggedFood](tagged),
		handler.WithErrorHandler[handler.Context, TaggedFood](errorHandler),
	))

	r.Post("/menus", handler.Wrap(createMenu,
		handler.WithJSON[handler.Context, Menu](nil),
		handler.WithErrorHandler[handler.Context, Menu](errorHandler),
	))

	return r
}
