package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultJSONLimit is the default maximum size for JSON request bodies (32KB).
const DefaultJSONLimit int64 = 32 << 10

// ContentTypeFunc reports whether a media type, without parameters, is accepted.
type ContentTypeFunc func(mediaType string) bool

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	limit       int64
	contentType ContentTypeFunc
	strict      bool
}

// WithLimit sets the maximum body size in bytes.
// Panics for non-positive limits so misconfiguration fails at startup.
func WithLimit(n int64) JSONOption {
	if n <= 0 {
		panic("binder.WithLimit: limit must be > 0")
	}
	return func(c *jsonConfig) { c.limit = n }
}

// WithContentType admits media types beyond the JSON ones, which are
// always accepted. A nil predicate admits nothing extra.
func WithContentType(fn ContentTypeFunc) JSONOption {
	return func(c *jsonConfig) { c.contentType = fn }
}

// WithDisallowUnknownFields rejects objects with fields the target type does not declare.
func WithDisallowUnknownFields() JSONOption {
	return func(c *jsonConfig) { c.strict = true }
}

func newJSONConfig(opts []JSONOption) *jsonConfig {
	cfg := &jsonConfig{limit: DefaultJSONLimit}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// IsJSONMediaType accepts application/json and any structured syntax
// suffix type such as application/problem+json.
func IsJSONMediaType(mediaType string) bool {
	mediaType = strings.ToLower(mediaType)
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// JSON creates a JSON binder function.
//
// The body is decoded as JSON when the request has no usable Content-Type
// header, or when its media type is a JSON one or passes the WithContentType
// predicate. Bodies over the limit are rejected; a larger declared
// Content-Length is rejected before anything is read.
//
// Example:
//
//	http.HandleFunc("/foods", handler.Wrap(createFood,
//		handler.WithBinder(binder.JSON(binder.WithLimit(4096))),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := newJSONConfig(opts)
	return func(r *http.Request, v any) error {
		return cfg.decode(r, v)
	}
}

// DecodeJSON decodes the body of r into v once, with the given options.
func DecodeJSON(r *http.Request, v any, opts ...JSONOption) error {
	return newJSONConfig(opts).decode(r, v)
}

func (c *jsonConfig) decode(r *http.Request, v any) error {
	select {
	case <-r.Context().Done():
		return fmt.Errorf("%w: %w", ErrRequestCanceled, r.Context().Err())
	default:
	}

	if err := c.checkContentType(r.Header.Get("Content-Type")); err != nil {
		return err
	}

	if r.ContentLength > c.limit {
		return fmt.Errorf("%w: payload (%d bytes) is larger than allowed (limit: %d bytes)",
			ErrPayloadTooLarge, r.ContentLength, c.limit)
	}

	if r.Body == nil {
		return ErrEmptyBody
	}

	// Read one byte past the limit to detect overflow without buffering more.
	body, err := io.ReadAll(io.LimitReader(r.Body, c.limit+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToReadBody, err)
	}
	if int64(len(body)) > c.limit {
		return fmt.Errorf("%w: payload has exceeded limit (%d bytes)", ErrPayloadTooLarge, c.limit)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	if c.strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return nil
}

// checkContentType rejects only a parseable media type that is neither JSON
// nor admitted by the configured predicate.
func (c *jsonConfig) checkContentType(contentType string) error {
	if contentType == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}

	if IsJSONMediaType(mediaType) || (c.contentType != nil && c.contentType(mediaType)) {
		return nil
	}

	return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
}
