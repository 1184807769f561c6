// Package environment names the application environment (development,
// staging, production) and carries it through context.Context and logs.
//
// Environment implements encoding.TextUnmarshaler, so configuration
// structs can declare it directly:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// Middleware attaches an environment to every request and LoggerExtractor
// adds it to records logged with that request's context:
//
//	r.Use(environment.Middleware(cfg.Env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
