// Package config manages environment variables.
//
// It reads variables from the process environment (optionally
// seeded from a `.env` file), loads them into structured Go
// types, and validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Apply defaults so the service runs with an empty environment.
//   - Validate values so the app fails fast on bad config.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists it is loaded into the process env
	// before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envKeys maps the flat environment variable names this service is
// configured with onto nested koanf key paths.
//
// The service keeps the short, conventional names (API_TOKEN, PORT, ...)
// at the deployment surface while the config struct stays nested and
// typed internally. Any env var not listed here is ignored, which keeps
// unrelated environment noise out of the config.
var envKeys = map[string]string{
	"ENV":                   "primary.env",
	"API_TOKEN":             "auth.token",
	"HOST":                  "server.host",
	"PORT":                  "server.port",
	"WORKERS":               "server.workers",
	"READ_TIMEOUT":          "server.read_timeout",
	"WRITE_TIMEOUT":         "server.write_timeout",
	"IDLE_TIMEOUT":          "server.idle_timeout",
	"CORS_ORIGINS":          "server.cors_origins",
	"LOG_LEVEL":             "observability.logging.level",
	"LOG_FORMAT":            "observability.logging.format",
	"NEW_RELIC_LICENSE_KEY": "observability.new_relic.license_key",
}

// Config is the root configuration object for the application.
//
// It is constructed once at startup by Load and treated as immutable
// afterwards: it is passed by pointer into the server container and
// never mutated by request handling code.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch defaults based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are ints interpreted as seconds when the http.Server is built.
type ServerConfig struct {
	Host         string `koanf:"host" validate:"required"`
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`

	// Workers caps GOMAXPROCS for the process. The deployment surface
	// calls this WORKERS; inside a single Go process it bounds parallelism
	// rather than forking worker processes.
	Workers int `koanf:"workers" validate:"min=1"`

	// CORSOrigins is the raw comma-separated origin list from CORS_ORIGINS.
	// Use CORSAllowedOrigins() to read it split and trimmed.
	CORSOrigins string `koanf:"cors_origins" validate:"required"`
}

// CORSAllowedOrigins returns the configured CORS origins as a slice.
func (s ServerConfig) CORSAllowedOrigins() []string {
	parts := strings.Split(s.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// AuthConfig stores the static API token every protected endpoint is
// compared against.
//
// The token is read once at startup and never logged or echoed back
// to clients.
type AuthConfig struct {
	Token string `koanf:"token" validate:"required"`
}

// DefaultAPIToken is the development fallback for API_TOKEN.
//
// The health endpoint reports whether the deployment still runs on this
// default so operators can notice an unconfigured token.
const DefaultAPIToken = "dev-token"

// defaultConfig returns a Config prefilled with development defaults.
//
// Load unmarshals the environment on top of this, so only values the
// deployment actually sets are overridden.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8000",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
			Workers:      4,
			CORSOrigins:  "*",
		},
		Auth: AuthConfig{Token: DefaultAPIToken},
		// Prefilled so env values overlay onto defaults instead of
		// producing a half-populated observability block.
		Observability: DefaultObservabilityConfig(),
	}
}

// Load reads configuration from environment variables, unmarshals it on
// top of the defaults, validates it, and returns the resulting config.
//
// Behavior summary:
//   - Starts from defaultConfig so an empty environment still boots.
//   - Loads only the env vars named in envKeys; everything else is skipped.
//   - Validates required fields with go-playground/validator tags.
//   - Injects default observability config if missing and pins the
//     service name + environment.
func Load() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Load environment variables into koanf.
	//
	// The empty prefix means every env var is offered to the mapping
	// function; returning "" from the mapper drops the variable, so
	// envKeys acts as an allowlist.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, err
	}

	// Unmarshal on top of the defaults. Keys absent from the environment
	// keep their default values.
	mainConfig := defaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, err
	}

	// Validate the entire config struct recursively using the
	// `validate:"..."` tags. Any missing required field is an error.
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, err
	}

	// Observability is a pointer field, so nil means "not provided".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment values regardless of what was
	// set, so telemetry sees consistent naming.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// IsDefaultToken reports whether the deployment still runs on the
// development API token.
func (c *Config) IsDefaultToken() bool {
	return c.Auth.Token == DefaultAPIToken
}
