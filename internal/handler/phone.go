package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/server"
	"github.com/deppfellow/phone-lookup-api/internal/service"
)

// validate is the shared validator instance for request structs in this
// package. validator.Validate is safe for concurrent use.
var validate = validator.New()

// LookupRequest carries the /lookup query parameters.
type LookupRequest struct {
	// Phone is the raw number string to look up.
	Phone string `query:"phone" validate:"required"`

	// Country is an optional ISO 3166-1 alpha-2 hint, used as the
	// default region when Phone lacks an international prefix.
	Country string `query:"country" validate:"omitempty,iso3166_1_alpha2"`
}

func (r *LookupRequest) Validate() error {
	return validate.Struct(r)
}

// ValidateRequest carries the /validate query parameters.
//
// No country hint is accepted: validation is international-only by
// contract.
type ValidateRequest struct {
	Phone string `query:"phone" validate:"required"`
}

func (r *ValidateRequest) Validate() error {
	return validate.Struct(r)
}

// PhoneHandler serves the phone lookup and validation endpoints.
type PhoneHandler struct {
	Handler
	services *service.Services
}

// NewPhoneHandler constructs a PhoneHandler.
func NewPhoneHandler(s *server.Server, services *service.Services) *PhoneHandler {
	return &PhoneHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Lookup handles GET /lookup.
//
// Success is a full LookupResult; every input problem (missing phone,
// unknown country hint, missing hint for a national-format number,
// unparsable number) surfaces as a 400 through the global error
// handler.
func (h *PhoneHandler) Lookup(c echo.Context, req *LookupRequest) (*service.LookupResult, error) {
	return h.services.Phone.Lookup(req.Phone, req.Country)
}

// Validate handles GET /validate.
//
// Only a missing phone parameter is an error; an unparsable number
// comes back as a 200 with is_valid=false. See
// service.PhoneService.Validate for the contract.
func (h *PhoneHandler) Validate(c echo.Context, req *ValidateRequest) (*service.ValidationResult, error) {
	return h.services.Phone.Validate(req.Phone), nil
}
