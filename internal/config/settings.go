package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings is the environment-provided configuration for the service.
// Every field has a workable default; a bare `svd` starts a functional
// instance.
type Settings struct {
	Host        string `env:"SVD_HOST" env-default:"0.0.0.0"`
	Port        string `env:"SVD_PORT" env-default:"8080"`
	FrontendDir string `env:"SVD_FRONTEND_DIR"`

	// TempDir holds per-request download artifacts. Defaults to the OS
	// temp dir at load time.
	TempDir string `env:"SVD_TEMP_DIR"`

	// CookieFile is an optional Netscape cookie jar for platforms that
	// demand login. A missing file is not an error; it is simply unused.
	CookieFile string `env:"YT_DLP_COOKIES_FILE" env-default:"cookies.txt"`

	// POTProviderURL enables the PO-token fallback attempt for YouTube
	// when set.
	POTProviderURL string `env:"YT_DLP_POT_PROVIDER_URL"`

	RateLimitRequests int           `env:"SVD_RATE_LIMIT_REQUESTS" env-default:"10"`
	RateLimitWindow   time.Duration `env:"SVD_RATE_LIMIT_WINDOW" env-default:"60s"`

	ExtractTimeout time.Duration `env:"SVD_EXTRACT_TIMEOUT" env-default:"60s"`
	RetryBackoff   time.Duration `env:"SVD_RETRY_BACKOFF" env-default:"2s"`

	// Upstream pacing for engine calls, shared by all requests.
	UpstreamRPS   float64 `env:"SVD_UPSTREAM_RPS" env-default:"2"`
	UpstreamBurst int     `env:"SVD_UPSTREAM_BURST" env-default:"4"`

	LogLevel string `env:"SVD_LOG_LEVEL" env-default:"INFO"`
}

// Load reads settings from the environment.
func Load() (*Settings, error) {
	settings := &Settings{}
	if err := cleanenv.ReadEnv(settings); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	if settings.TempDir == "" {
		settings.TempDir = os.TempDir()
	}
	return settings, nil
}

// Addr returns the host:port the HTTP server binds to.
func (s *Settings) Addr() string {
	return s.Host + ":" + s.Port
}
