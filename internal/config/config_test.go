package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.Workers)
	assert.Equal(t, DefaultAPIToken, cfg.Auth.Token)
	assert.True(t, cfg.IsDefaultToken())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_TOKEN", "super-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("WORKERS", "8")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.Auth.Token)
	assert.False(t, cfg.IsDefaultToken())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.Workers)
	assert.Equal(t, "production", cfg.Primary.Env)
	assert.True(t, cfg.Observability.IsProduction())

	// Untouched vars keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadIgnoresUnrelatedEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "1234")
	t.Setenv("TOKEN", "nope")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DefaultAPIToken, cfg.Auth.Token)
}

func TestCORSAllowedOrigins(t *testing.T) {
	s := ServerConfig{CORSOrigins: "https://a.example, https://b.example ,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSAllowedOrigins())

	s = ServerConfig{CORSOrigins: "*"}
	assert.Equal(t, []string{"*"}, s.CORSAllowedOrigins())
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "shout"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}
