package gateway

import "time"

// Config holds the gateway's remote endpoint configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.placehub.app/api/v1".
	// The auth endpoints live under BaseURL + "/auth".
	BaseURL string `env:"PLACEHUB_API_URL,required"`

	// HTTPTimeout bounds each auth request when no custom HTTP client is
	// supplied.
	HTTPTimeout time.Duration `env:"PLACEHUB_HTTP_TIMEOUT" envDefault:"15s"`
}
