package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files   []string
	prefix  string
	noCache bool
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// ".env", which is optional, these files must exist. Variables already set in
// the process environment are not overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithPrefix prepends prefix to every variable name, so `env:"ADDR"` reads
// PREFIX_ADDR when prefix is "PREFIX_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithoutCache parses the environment again even if T was loaded before.
func WithoutCache() Option {
	return func(o *options) { o.noCache = true }
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]any)

	defaultEnvLoaded sync.Once
)

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

// Load parses environment variables into a T using `env` struct tags.
//
// The optional ".env" file in the working directory is read once per
// process. Each config type (and prefix) is parsed once and cached; later
// calls return the cached copy. If *T implements Validate() error, it is
// called after parsing.
//
// Example:
//
//	type AppConfig struct {
//		Name      string `env:"APP_NAME" envDefault:"goodfoods"`
//		JSONLimit int64  `env:"JSON_LIMIT" envDefault:"32768"`
//	}
//
//	cfg, err := config.Load[AppConfig]()
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// The default .env file is optional
		_ = godotenv.Load()
	})
	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrEnvFile, err)
		}
	}

	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.prefix}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok && !o.noCache {
		return cached.(T), nil
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	if v, ok := any(&cfg).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return cfg, errors.Join(ErrInvalidConfig, err)
		}
	}

	cache[key] = cfg
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
