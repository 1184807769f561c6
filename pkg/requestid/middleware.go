package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures the request id middleware.
type Option func(*options)

type options struct {
	header   string
	generate func() string
	trust    bool
}

// WithHeader sets the header read from requests and echoed in responses.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = name
		}
	}
}

// WithGenerator replaces the id generator (default: UUIDv4 strings).
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// WithoutTrust ignores ids supplied by clients and always generates a new one.
func WithoutTrust() Option {
	return func(o *options) { o.trust = false }
}

// New returns a middleware that assigns every request an id.
// A valid client-supplied id (up to 128 characters of letters, digits,
// '-' and '_') is reused; anything else is replaced by a generated one.
// The id is stored in the request context and set on the response header.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{
		header:   Header,
		generate: uuid.NewString,
		trust:    true,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if o.trust {
				id = r.Header.Get(o.header)
			}
			if !isValidRequestID(id) {
				id = o.generate()
			}
			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
