package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/validjson/pkg/logger"
)

// Check is a named readiness dependency.
type Check struct {
	Name string
	Func func(ctx context.Context) error
}

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheckHandler returns a handler usable for liveness and readiness probes.
//
// Without checks it always answers 200 {"status":"alive"}. With checks, each
// one runs with the request context; the answer is 200 {"status":"ready"} when
// all pass, otherwise 503 {"status":"not_ready"} with the failing check names.
// Failure details are logged, not returned.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			writeHealth(w, http.StatusOK, healthStatus{Status: "alive"})
			return
		}

		status := healthStatus{Status: "ready", Checks: make(map[string]string, len(checks))}
		code := http.StatusOK
		for _, c := range checks {
			if err := c.Func(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					slog.String("check", c.Name),
					logger.Error(err),
					logger.Component("healthcheck"),
				)
				status.Checks[c.Name] = "failed"
				status.Status = "not_ready"
				code = http.StatusServiceUnavailable
				continue
			}
			status.Checks[c.Name] = "ok"
		}

		writeHealth(w, code, status)
	}
}

func writeHealth(w http.ResponseWriter, code int, status healthStatus) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
