package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// Why this exists:
//   - Avoid scattering middleware construction throughout routing/setup
//     code.
//   - Provide a single place where shared dependencies (like
//     *server.Server and the New Relic application instance) are wired
//     into middleware.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// Auth enforces the static X-API-TOKEN check on protected routes.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware; it degrades to a no-op when
	// the agent is not configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container.
//
// It also extracts the New Relic application instance (if configured)
// from the server's LoggerService and injects it into TracingMiddleware.
// When New Relic is not configured, nrApp is nil and tracing degrades
// into a pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
