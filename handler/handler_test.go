package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/validjson/handler"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, f food) handler.Response {
		return handler.JSON(f)
	}

	t.Run("binds and renders value", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithJSON[handler.Context, food](nil))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{"name":"Pizza","rating":10}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"Pizza","rating":10}`, w.Body.String())
	})

	t.Run("validation failure renders report", func(t *testing.T) {
		t.Parallel()
		called := false
		h := handler.Wrap(func(ctx handler.Context, f food) handler.Response {
			called = true
			return handler.Empty()
		}, handler.WithBinder[handler.Context, food](handler.ValidatedJSON(nil)))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{"name":"tt","rating":11}`))

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"name": ["must be at least 3 characters long"],
			"rating": ["must be between 1 and 10"]
		}`, w.Body.String())
	})

	t.Run("oversized body renders error report", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithJSON[handler.Context, food](handler.NewJSONConfig(handler.WithLimit(10))))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{"name":"Pizza","rating":10}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		msg := gjson.Get(w.Body.String(), "error.0").String()
		assert.Contains(t, msg, "payload too large")
		assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "error.#").Int())
	})

	t.Run("binders run in order", func(t *testing.T) {
		t.Parallel()
		var order []string
		first := func(r *http.Request, v any) error {
			order = append(order, "first")
			return nil
		}
		second := func(r *http.Request, v any) error {
			order = append(order, "second")
			return handler.ErrForbidden
		}

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, food](first, second))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{}`))

		assert.Equal(t, []string{"first", "second"}, order)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":["forbidden"]}`, w.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
			return nil
		}, handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, errors.Is(got, handler.ErrNilResponse))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithBinder[handler.Context, food](func(*http.Request, any) error {
			return errors.New("database is down")
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":["internal_server_error"]}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "database")
	})

	t.Run("decorators wrap in order", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, food] {
			return func(next handler.HandlerFunc[handler.Context, food]) handler.HandlerFunc[handler.Context, food] {
				return func(ctx handler.Context, f food) handler.Response {
					order = append(order, name)
					return next(ctx, f)
				}
			}
		}

		h := handler.Wrap(echo,
			handler.WithJSON[handler.Context, food](nil),
			handler.WithDecorators(mark("outer"), mark("inner")),
		)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{"name":"Pizza","rating":1}`))

		assert.Equal(t, []string{"outer", "inner"}, order)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom context factory", func(t *testing.T) {
		t.Parallel()
		type appContext struct {
			handler.Context
			tenant string
		}

		h := handler.Wrap(func(ctx appContext, _ struct{}) handler.Response {
			return handler.JSON(map[string]string{"tenant": ctx.tenant})
		}, handler.WithContextFactory[appContext, struct{}](func(w http.ResponseWriter, r *http.Request) appContext {
			return appContext{Context: handler.NewContext(w, r), tenant: "acme"}
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.JSONEq(t, `{"tenant":"acme"}`, w.Body.String())
	})

	t.Run("custom context without factory panics", func(t *testing.T) {
		t.Parallel()
		type appContext struct{ handler.Context }

		h := handler.Wrap(func(ctx appContext, _ struct{}) handler.Response {
			return handler.Empty()
		})

		assert.Panics(t, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	newLogger := func() (*slog.Logger, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
	}

	t.Run("request error logged at warn", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogger()
		h := handler.Wrap(func(ctx handler.Context, f food) handler.Response {
			return handler.Empty()
		},
			handler.WithJSON[handler.Context, food](handler.NewJSONConfig(handler.WithLogger(log))),
			handler.WithErrorHandler[handler.Context, food](handler.NewErrorHandler(log)),
		)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(`{"name":"x","rating":5}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"name":["must be at least 3 characters long"]}`, w.Body.String())

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		debug := gjson.ParseBytes(lines[0])
		assert.Equal(t, "DEBUG", debug.Get("level").String())
		assert.Equal(t, "validation_failed", debug.Get("event").String())

		entry := gjson.ParseBytes(lines[1])
		assert.Equal(t, "WARN", entry.Get("level").String())
		assert.Equal(t, "request error", entry.Get("msg").String())
		assert.Equal(t, int64(http.StatusBadRequest), entry.Get("status_code").Int())
		assert.Equal(t, "invalid", entry.Get("kind").String())
		assert.Equal(t, http.MethodPost, entry.Get("method").String())
		assert.Equal(t, "/foods", entry.Get("path").String())
	})

	t.Run("server error logged at error", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogger()
		h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
			return nil
		}, handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(log)))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		entry := gjson.ParseBytes(bytes.TrimSpace(buf.Bytes()))
		assert.Equal(t, "ERROR", entry.Get("level").String())
		assert.Equal(t, handler.ErrNilResponse.Error(), entry.Get("error").String())
	})

	t.Run("http error keeps status", func(t *testing.T) {
		t.Parallel()
		log, _ := newLogger()
		h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
			return handler.Empty()
		},
			handler.WithBinder[handler.Context, struct{}](func(*http.Request, any) error {
				return handler.NewHTTPError(http.StatusConflict, "food_exists")
			}),
			handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(log)),
		)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/foods", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":["food_exists"]}`, w.Body.String())
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.NotNil(t, handler.NewErrorHandler(nil))
	})
}
