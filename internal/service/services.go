package service

import (
	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// Services groups the business-layer services so router setup passes a
// single object around.
type Services struct {
	Country *CountryService
	Phone   *PhoneService
}

// NewServices constructs the service container.
//
// The country service owns the embedded ISO 3166 dataset; the phone
// service depends on it to resolve region codes into country metadata.
func NewServices(s *server.Server) *Services {
	countryService := NewCountryService(s)

	return &Services{
		Country: countryService,
		Phone:   NewPhoneService(s, countryService),
	}
}
