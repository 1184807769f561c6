// Package handler provides validated JSON extraction and type-safe HTTP
// handlers for JSON APIs.
//
// # Validated JSON
//
// ExtractJSON decodes a request body into a typed value and runs a checker
// over it. Every failure comes back as a *RequestError that renders as a
// 400 Bad Request with a JSON report:
//
//	type Food struct {
//		Name   string `json:"name"`
//		Rating int    `json:"rating"`
//	}
//
//	func (f Food) Validate() error {
//		return validator.Object().
//			Field("name", validator.MinLen(f.Name, 3)).
//			Field("rating", validator.RangeNum(f.Rating, 1, 10)).
//			Err()
//	}
//
//	func createFood(w http.ResponseWriter, r *http.Request) {
//		food, err := handler.ExtractJSON[Food](r, nil)
//		if err != nil {
//			handler.JSON(err).Render(w, r)
//			return
//		}
//		handler.JSON(food).Render(w, r)
//	}
//
// A body of {"name": "tt", "rating": 11} is answered with:
//
//	{"name": ["must be at least 3 characters long"], "rating": ["must be between 1 and 10"]}
//
// Bodies that cannot be decoded (wrong content type, over the size limit,
// syntax errors) are answered with a single entry:
//
//	{"error": ["payload too large: payload has exceeded limit (32768 bytes)"]}
//
// # Configuration
//
// JSONConfig holds the size limit, accepted content types, the checker and
// an optional error hook. It is built once and shared:
//
//	cfg := handler.NewJSONConfig(
//		handler.WithLimit(4096),
//		handler.WithChecker(validator.Struct),
//		handler.WithErrorHook(func(err error, r *http.Request) error {
//			if errors.Is(err, binder.ErrPayloadTooLarge) {
//				return handler.ErrRequestEntityTooLarge
//			}
//			return nil
//		}),
//	)
//
// Pass it explicitly, or install it for a whole router with
// JSONConfigMiddleware and call the extractors with a nil config.
//
// # Typed Handlers
//
// HandlerFunc binds a request to a typed value and returns a Response:
//
//	create := func(ctx handler.Context, food Food) handler.Response {
//		return handler.JSON(food, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/foods", handler.Wrap(create, handler.WithJSON[handler.Context, Food](nil)))
//
// Binding errors go to the error handler. The default one renders request
// errors and HTTPError values as JSON reports and other errors as a 500;
// NewErrorHandler does the same and logs each error.
package handler
