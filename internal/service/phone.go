package service

import (
	"fmt"
	"strings"

	"github.com/deppfellow/phone-lookup-api/internal/errs"
	"github.com/deppfellow/phone-lookup-api/internal/phone"
	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// LookupResult is the full record returned by /lookup.
//
// Immutable, constructed fresh per request, never persisted.
type LookupResult struct {
	// PhoneNumber is the international display format.
	PhoneNumber string `json:"phone_number"`

	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`

	// NumberType is the numbering plan classification
	// (MOBILE, FIXED_LINE, TOLL_FREE, ...).
	NumberType string `json:"number_type"`

	IsValid    bool `json:"is_valid"`
	IsPossible bool `json:"is_possible"`

	FormattedE164     string `json:"formatted_e164"`
	FormattedNational string `json:"formatted_national"`

	Timezones []string `json:"timezones,omitempty"`
}

// ValidationResult is the /validate payload.
//
// Unlike /lookup, an unparsable number here is data, not a failure: the
// record carries is_valid=false plus the parse error text instead of
// the request erroring out.
type ValidationResult struct {
	Phone      string `json:"phone"`
	IsValid    bool   `json:"is_valid"`
	IsPossible bool   `json:"is_possible"`

	CountryCode       string `json:"country_code,omitempty"`
	FormattedE164     string `json:"formatted_e164,omitempty"`
	FormattedNational string `json:"formatted_national,omitempty"`

	Error string `json:"error,omitempty"`
}

// PhoneService implements the lookup and validation operations.
//
// It holds no per-request state; every call is independent.
type PhoneService struct {
	server    *server.Server
	countries *CountryService
}

// NewPhoneService constructs a PhoneService.
func NewPhoneService(s *server.Server, countries *CountryService) *PhoneService {
	return &PhoneService{
		server:    s,
		countries: countries,
	}
}

// Lookup parses rawPhone (using countryHint as the default region when
// provided) and assembles the full LookupResult.
//
// Error policy (all 400s, surfaced through the global error handler):
//   - countryHint set but not a known ISO alpha-2 code
//   - no countryHint and no leading "+": the service refuses to guess
//     the region
//   - unparsable number, with the library's reason
//   - parsed number resolves to no known country (e.g. universal
//     toll-free numbers with the non-geographic "001" region)
func (ps *PhoneService) Lookup(rawPhone, countryHint string) (*LookupResult, error) {
	countryHint = strings.ToUpper(strings.TrimSpace(countryHint))

	if countryHint != "" && !ps.countries.IsKnown(countryHint) {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Unknown country code: %s", countryHint), false, nil, nil)
	}

	// A number without an international prefix is ambiguous across
	// numbering plans. Require the hint instead of guessing.
	if countryHint == "" && !strings.HasPrefix(strings.TrimSpace(rawPhone), "+") {
		return nil, errs.NewBadRequestError(
			"A country hint is required for numbers without an international prefix", false, nil, nil)
	}

	details, err := phone.Parse(rawPhone, countryHint)
	if err != nil {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Invalid phone number: %s", err.Error()), false, nil, nil)
	}

	info, ok := ps.countries.Resolve(details.Region)
	if !ok {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("No country is associated with this number (region %q)", details.Region), false, nil, nil)
	}

	return &LookupResult{
		PhoneNumber:       details.International,
		CountryCode:       info.Code,
		CountryName:       info.Name,
		NumberType:        details.Type,
		IsValid:           details.Valid,
		IsPossible:        details.Possible,
		FormattedE164:     details.E164,
		FormattedNational: details.National,
		Timezones:         details.Timezones,
	}, nil
}

// Validate parses rawPhone in international-only mode (no default
// region) and reports the outcome as data.
//
// It never returns an error for an unparsable number: negative results
// come back as is_valid=false / is_possible=false with the reason in
// the Error field. This asymmetry with Lookup is contractual.
func (ps *PhoneService) Validate(rawPhone string) *ValidationResult {
	details, err := phone.ParseStrict(rawPhone)
	if err != nil {
		return &ValidationResult{
			Phone:      rawPhone,
			IsValid:    false,
			IsPossible: false,
			Error:      err.Error(),
		}
	}

	return &ValidationResult{
		Phone:             rawPhone,
		IsValid:           details.Valid,
		IsPossible:        details.Possible,
		CountryCode:       details.Region,
		FormattedE164:     details.E164,
		FormattedNational: details.National,
	}
}
