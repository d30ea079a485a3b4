// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/handler"
	"github.com/deppfellow/phone-lookup-api/internal/middleware"
)

// New assembles the Echo instance: global middleware chain, error
// handler, and all routes.
//
// Middleware order matters:
//  1. Recover          panics become 500s before anything else sees them
//  2. RequestID        correlation id available to everything below
//  3. NewRelic         transaction in context (no-op when disabled)
//  4. ContextEnhancer  request-scoped logger with correlation + trace ids
//  5. RequestLogger    one structured log line per request
//  6. Secure + CORS    header hygiene
//
// The auth gate is NOT global: it is applied per group so the health
// endpoint stays unauthenticated.
func New(mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(mws.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mws.Tracing.NewRelicMiddleware())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, mws, h)

	return e
}
