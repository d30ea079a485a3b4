// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces
// for debugging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/phone-lookup-api/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is disabled (no license key), the service still exists
// but holds a nil application; callers must treat GetApplication() == nil
// as "telemetry off".
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when APM is disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if app := ls.GetApplication(); app != nil {
		app.Shutdown(timeout)
	}
}

// New builds the application's main zerolog logger plus the LoggerService.
//
// Construction order matters:
//  1. Initialize the New Relic agent if a license key is configured.
//  2. Pick the base writer: human-friendly console output for the
//     "console" format, plain stdout for "json".
//  3. If log forwarding is enabled and the agent exists, wrap the writer
//     with zerologWriter so log lines carry trace linking metadata.
//
// A New Relic init failure does not prevent startup: the error is
// returned so main can log it, together with a fully working logger.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	service := &LoggerService{}

	var nrErr error
	if obs.NewRelic.Enabled() {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
		}

		app, err := newrelic.NewApplication(opts...)
		if err != nil {
			// Keep the service running without APM rather than failing
			// startup on a telemetry misconfiguration.
			nrErr = err
		} else {
			service.nrApp = app
		}
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if service.nrApp != nil && obs.NewRelic.AppLogForwardingEnabled {
		// zerologWriter decorates each JSON log line with New Relic
		// linking metadata and forwards it to the agent.
		out = zerologWriter.New(os.Stdout, service.nrApp)
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &log, service, nrErr
}

// WithTraceContext returns a child logger that carries the transaction's
// trace and span ids, so log lines can be correlated with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()

	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
