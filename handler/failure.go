package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

// Kind classifies why a request payload was rejected.
type Kind uint8

const (
	// KindMalformed covers transport and decoding failures: wrong content
	// type, oversized or empty body, syntax and type errors.
	KindMalformed Kind = iota + 1
	// KindInvalid covers payloads that decoded but violate constraints.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// RequestError is the failure returned by the JSON extractor.
// It renders as a 400 Bad Request whose body is Report.
//
// For malformed payloads Report is {"error": [message]}; for constraint
// violations it is the flattened validation error tree.
type RequestError struct {
	Kind   Kind
	Report errtree.Report
	Err    error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	msg := e.Kind.String() + " request"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying decoding or validation error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusCode always reports 400 Bad Request.
func (e *RequestError) StatusCode() int {
	return http.StatusBadRequest
}

// MarshalJSON encodes the report. A nil report encodes as an empty object.
func (e *RequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.report())
}

// Render writes the report with status 400, so a RequestError can be
// returned from a handler as a Response.
func (e *RequestError) Render(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, e.StatusCode(), e.report())
}

func (e *RequestError) report() errtree.Report {
	if e.Report == nil {
		return errtree.Report{}
	}
	return e.Report
}

func malformed(err error) *RequestError {
	return &RequestError{
		Kind:   KindMalformed,
		Report: errorReport(err.Error()),
		Err:    err,
	}
}

func invalid(err error) *RequestError {
	return &RequestError{
		Kind:   KindInvalid,
		Report: errtree.Flatten(errtree.FromError(err)),
		Err:    err,
	}
}
