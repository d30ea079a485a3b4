package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/middleware"
	"github.com/deppfellow/phone-lookup-api/internal/server"
	"github.com/deppfellow/phone-lookup-api/internal/service"
)

// CountryHandler serves the supported-countries endpoint.
type CountryHandler struct {
	Handler
	services *service.Services
}

// NewCountryHandler constructs a CountryHandler.
func NewCountryHandler(s *server.Server, services *service.Services) *CountryHandler {
	return &CountryHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// SupportedCountries handles GET /supported-countries.
//
// The set is small (~250 entries) and static, so it is returned whole:
// no pagination, stable ordering by alpha-2 code. The endpoint takes no
// parameters, so it skips the typed bind/validate pipeline.
func (h *CountryHandler) SupportedCountries(c echo.Context) error {
	resp := h.services.Country.SupportedCountries()

	middleware.GetLogger(c).Debug().
		Int("total", resp.Total).
		Msg("supported countries served")

	return c.JSON(http.StatusOK, resp)
}
