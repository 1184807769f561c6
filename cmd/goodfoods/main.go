// Command goodfoods serves a small JSON API whose request bodies are
// decoded and validated by the handler package.
package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/validjson/pkg/config"
	"github.com/dmitrymomot/validjson/pkg/httpserver"
	"github.com/dmitrymomot/validjson/pkg/logger"
	"github.com/dmitrymomot/validjson/pkg/requestid"
)

func main() {
	cfg := config.MustLoad[Config]()

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(cfg, log)); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
