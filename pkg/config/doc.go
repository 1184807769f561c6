// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags; an optional .env
// file is read with godotenv before parsing:
//
//	type Config struct {
//		Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
//		JSONLimit int64                   `env:"JSON_LIMIT" envDefault:"32768"`
//		HTTP      httpserver.Config
//	}
//
//	cfg := config.MustLoad[Config]()
//
// Parsed values are cached per type. Types with a Validate() error method
// are validated after parsing and rejected with ErrInvalidConfig.
package config
