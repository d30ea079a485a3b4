package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/config"
	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// HealthHandler exposes the liveness endpoint external systems use to
// verify the service is alive.
//
// The endpoint is deliberately dependency-free: the service has no
// external dependencies per request, so there is nothing to probe
// beyond process liveness. It is also the only unauthenticated route.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`

	// APITokenConfigured is true when the deployment has replaced the
	// development default token. It reveals nothing about the token
	// itself; it exists so operators notice an unconfigured instance.
	APITokenConfigured bool `json:"api_token_configured"`
}

// CheckHealth returns a fixed "ok" status.
//
// Always 200; used for liveness probing only.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		Service:            "Phone Number Lookup API",
		Version:            config.ServiceVersion,
		APITokenConfigured: !h.server.Config.IsDefaultToken(),
	})
}
