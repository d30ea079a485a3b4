package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// It needs:
//   - server: for shared deps (logger/config)
//   - nrApp: the New Relic application instance (nil if disabled)
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic Echo middleware.
//
// If nrApp is nil, it returns a no-op middleware that passes the request
// through unchanged. Otherwise nrecho.Middleware:
//   - starts a New Relic transaction for each request
//   - stores that transaction in the request context
//   - records timing and status codes
//
// This middleware is what makes newrelic.FromContext(...) work later in
// the context enhancer and the handler pipeline.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// RecordCustomEvent emits a custom APM event when the agent exists.
// A no-op when New Relic is disabled.
func (tm *TracingMiddleware) RecordCustomEvent(name string, attrs map[string]interface{}) {
	if tm.nrApp != nil {
		tm.nrApp.RecordCustomEvent(name, attrs)
	}
}
