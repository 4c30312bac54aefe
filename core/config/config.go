package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParse is returned when environment variables cannot be parsed into
	// the target struct.
	ErrParse = errors.New("config: failed to parse environment")

	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed struct value
)

// Load parses environment variables into cfg. The first call for a given
// type does the actual parsing; subsequent calls return the cached result.
// A .env file in the working directory is loaded once, before any parsing;
// its absence is not an error.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}

	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure. Intended for process startup
// where a missing required variable should fail fast.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
