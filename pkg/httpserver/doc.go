// Package httpserver runs an http.Server with graceful shutdown.
//
// Server is configured with functional options or from an env-tagged Config
// and blocks in Run until the context is canceled or the process receives
// SIGINT/SIGTERM:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes as small JSON documents.
package httpserver
