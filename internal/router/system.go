package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of
// business logic.
//
// Only the health endpoint lives here, and it is deliberately mounted
// outside the token-guarded group: liveness probes carry no
// credentials.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)
}
