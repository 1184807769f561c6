package main

import (
	"time"

	"github.com/dmitrymomot/validjson/pkg/environment"
	"github.com/dmitrymomot/validjson/pkg/httpserver"
	"github.com/dmitrymomot/validjson/pkg/validator"
)

// Config is the service configuration read from the environment.
type Config struct {
	Name       string                  `env:"APP_NAME" envDefault:"goodfoods"`
	Env        environment.Environment `env:"APP_ENV" envDefault:"development"`
	JSONLimit  int64                   `env:"JSON_LIMIT" envDefault:"32768"`
	JSONStrict bool                    `env:"JSON_STRICT" envDefault:"false"`

	// RateLimit is the number of requests a client IP may make per
	// RateWindow. Zero disables rate limiting.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"0"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	HTTP httpserver.Config
}

func (c *Config) Validate() error {
	return validator.Object().
		Field("APP_NAME", validator.Required(c.Name)).
		Field("JSON_LIMIT", validator.MinNum(c.JSONLimit, 1)).
		Field("RATE_LIMIT", validator.MinNum(c.RateLimit, 0)).
		Field("RATE_WINDOW", validator.MinNum(c.RateWindow, time.Second)).
		Err()
}
