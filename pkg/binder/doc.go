// Package binder decodes HTTP request bodies into Go values.
//
// The JSON binder enforces three things before a value reaches the
// handler: the request declares a JSON media type, the body fits within a
// byte limit, and the body holds exactly one JSON value.
//
// # Basic Usage
//
//	type CreateFoodRequest struct {
//	    Name   string `json:"name"`
//	    Rating int    `json:"rating"`
//	}
//
//	var req CreateFoodRequest
//	if err := binder.DecodeJSON(r, &req, binder.WithLimit(4096)); err != nil {
//	    // handle error
//	}
//
// JSON returns the same decoder as a reusable binder function with its
// options resolved once:
//
//	bind := binder.JSON(binder.WithDisallowUnknownFields())
//	err := bind(r, &req)
//
// # Content Types
//
// application/json and any "+json" structured syntax suffix (for example
// application/problem+json) are always accepted. Parameters such as charset
// are ignored. A request without a Content-Type header, or with one that
// does not parse, is decoded as JSON. Any other media type is rejected with
// ErrUnsupportedMediaType unless WithContentType admits it:
//
//	binder.JSON(binder.WithContentType(func(mt string) bool {
//	    return mt == "text/plain"
//	}))
//
// # Error Handling
//
// All failures wrap one of the package sentinels and can be matched with
// errors.Is:
//
//	if errors.Is(err, binder.ErrPayloadTooLarge) {
//	    // respond with a size hint
//	}
//
// The default limit is DefaultJSONLimit (32KB). Bodies that declare a larger
// Content-Length are rejected before reading; streamed bodies are cut off one
// byte past the limit.
package binder
