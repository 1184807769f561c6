package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

// ErrorKey is the report key under which transport and HTTP errors are listed.
const ErrorKey = "error"

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, j.status, j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a response that encodes v as the response body.
// The default status is 200 OK. Errors are rendered the way the default
// error handler renders them, so handlers can return a failure directly:
//
//	if exists {
//		return handler.JSON(handler.ErrConflict)
//	}
//	return handler.JSON(food, handler.WithJSONStatus(http.StatusCreated))
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return classifyError(err).response
	}

	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func errorReport(msg string) errtree.Report {
	return errtree.Report{ErrorKey: []string{msg}}
}
