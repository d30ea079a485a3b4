package config

import (
	"fmt"
)

// ServiceName identifies this service in logs/traces/APM dashboards.
// Hardcoded per service so nobody "configures" it into chaos.
const ServiceName = "phone-lookup-api"

// ServiceVersion is reported by the health endpoint and attached to
// telemetry.
const ServiceVersion = "1.0.0"

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility.
//
// This covers:
//   - logging settings (format, level)
//   - APM/tracing provider settings (New Relic here)
//
// It is embedded under Config.Observability and is optional at the
// root level (pointer in Config). If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in telemetry. Pinned to the
	// package-level ServiceName constant during Load.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split telemetry by environment
	// (production, staging, development, etc.).
	Environment string `koanf:"environment" validate:"required"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`

	// NewRelic config controls APM and tracing features.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Empty means "pick a default based on environment"; see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format for logs ("json" or "console").
	// JSON is the default so log pipelines don't cry.
	Format string `koanf:"format" validate:"required"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means "not configured": every New Relic
// integration in the service degrades to a no-op in that case.
type NewRelicConfig struct {
	// LicenseKey is the New Relic ingest key. Empty means disabled.
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled enables forwarding of application logs
	// to New Relic.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled enables distributed tracing so requests
	// can be traced across service boundaries.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent.
	// Usually off to avoid noisy, mixed-format logs.
	DebugLogging bool `koanf:"debug_logging"`
}

// Enabled reports whether the New Relic agent should be initialized.
func (n NewRelicConfig) Enabled() bool {
	return n.LicenseKey != ""
}

// DefaultObservabilityConfig provides a safe set of defaults.
//
// Used when Config.Observability is not provided via env. Defaults aim
// to be sensible for local dev while not breaking production.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		// Service/environment are overwritten in Load.
		ServiceName: ServiceName,
		Environment: "development",

		Logging: LoggingConfig{
			// Level left empty on purpose: GetLogLevel defaults it
			// per environment (debug in dev, info in prod).
			Format: "json",
		},

		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
//
// Useful for validating enums that `validate:"required"` cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	// Enforce a strict set of allowed log levels. An empty level is
	// allowed and resolved per environment by GetLogLevel.
	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// It supports defaulting by environment:
//   - production: "info" if no level is set
//   - anything else: "debug" if no level is set
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		if c.IsProduction() {
			return "info"
		}
		return "debug"
	}
	return c.Logging.Level
}

// IsProduction reports whether the application runs in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
