package handler

import (
	"github.com/deppfellow/phone-lookup-api/internal/server"
	"github.com/deppfellow/phone-lookup-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Similar to Middlewares and Services: one struct keeps router setup
// clean, passing a single object around instead of many.
type Handlers struct {
	Health  *HealthHandler  // liveness endpoint
	Phone   *PhoneHandler   // lookup + validate endpoints
	Country *CountryHandler // supported-countries endpoint
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/etc.)
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Phone:   NewPhoneHandler(s, services),
		Country: NewCountryHandler(s, services),
	}
}
