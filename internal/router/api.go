package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/handler"
	"github.com/deppfellow/phone-lookup-api/internal/middleware"
)

// registerAPIRoutes registers the token-guarded business endpoints.
//
// Everything in this group passes through the auth middleware first: a
// request with a missing or wrong X-API-TOKEN never reaches a handler.
func registerAPIRoutes(r *echo.Echo, mws *middleware.Middlewares, h *handler.Handlers) {
	g := r.Group("", mws.Auth.RequireToken)

	g.GET("/lookup", handler.Handle(h.Phone.Handler, h.Phone.Lookup, http.StatusOK,
		func() *handler.LookupRequest { return &handler.LookupRequest{} }))

	g.GET("/validate", handler.Handle(h.Phone.Handler, h.Phone.Validate, http.StatusOK,
		func() *handler.ValidateRequest { return &handler.ValidateRequest{} }))

	g.GET("/supported-countries", h.Country.SupportedCountries)
}
