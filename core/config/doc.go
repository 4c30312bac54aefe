// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	type APIConfig struct {
//		BaseURL string        `env:"PLACEHUB_API_URL,required"`
//		Timeout time.Duration `env:"PLACEHUB_HTTP_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded only once per process lifetime; later
// Load calls for the same type return the cached value. Different types are
// cached independently.
package config
