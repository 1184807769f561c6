// Package requestid assigns correlation ids to HTTP requests.
//
// The middleware reuses a valid "X-Request-ID" header sent by the client or
// generates a UUID, stores the id in the request context and echoes it in
// the response header:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	r.Post("/foods", func(w http.ResponseWriter, r *http.Request) {
//	    id := requestid.FromContext(r.Context())
//	    // ...
//	})
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with a request context carries the id.
package requestid
