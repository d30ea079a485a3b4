package service

import (
	"sort"
	"strings"

	"github.com/pariz/gountries"
	gocache "github.com/patrickmn/go-cache"

	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// CountryInfo is the country metadata record returned by the API.
//
// Read-only reference data sourced from the embedded ISO 3166 dataset;
// the service never mutates it.
type CountryInfo struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Alpha3       string   `json:"alpha_3,omitempty"`
	Numeric      string   `json:"numeric,omitempty"`
	CallingCodes []string `json:"calling_codes,omitempty"`
}

// CountriesResponse is the /supported-countries payload.
type CountriesResponse struct {
	Total     int           `json:"total"`
	Countries []CountryInfo `json:"countries"`
}

// CountryService resolves ISO 3166-1 alpha-2 codes into country
// metadata.
//
// The dataset is embedded and immutable, so the full country list is
// built once at startup. Individual resolves go through a small
// in-process cache: the mapping work is cheap, but lookup traffic
// hits the same handful of regions over and over.
type CountryService struct {
	server *server.Server
	query  *gountries.Query
	cache  *gocache.Cache

	// all is the full country list sorted ascending by alpha-2 code.
	// Built once in the constructor; All returns it as-is.
	all []CountryInfo
}

// NewCountryService loads the embedded dataset and precomputes the
// sorted country list.
func NewCountryService(s *server.Server) *CountryService {
	query := gountries.New()

	countries := query.FindAllCountries()
	all := make([]CountryInfo, 0, len(countries))
	for _, c := range countries {
		all = append(all, countryInfoFrom(c))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Code < all[j].Code
	})

	return &CountryService{
		server: s,
		query:  query,
		// Reference data never goes stale, so entries do not expire.
		cache: gocache.New(gocache.NoExpiration, 0),
		all:   all,
	}
}

// countryInfoFrom maps the dataset record onto the API's country shape.
func countryInfoFrom(c gountries.Country) CountryInfo {
	return CountryInfo{
		Code:         c.Alpha2,
		Name:         c.Name.Common,
		Alpha3:       c.Alpha3,
		Numeric:      c.CCN3,
		CallingCodes: c.CallingCodes,
	}
}

// Resolve returns the metadata for an ISO alpha-2 code.
//
// The code is matched case-insensitively. The boolean is false when the
// code is not a known country (including non-geographic region codes
// like "001" that the phone library produces for universal numbers).
func (cs *CountryService) Resolve(alpha2 string) (CountryInfo, bool) {
	key := strings.ToUpper(strings.TrimSpace(alpha2))
	if key == "" {
		return CountryInfo{}, false
	}

	if cached, found := cs.cache.Get(key); found {
		return cached.(CountryInfo), true
	}

	country, err := cs.query.FindCountryByAlpha(key)
	if err != nil {
		return CountryInfo{}, false
	}

	info := countryInfoFrom(country)
	cs.cache.Set(key, info, gocache.NoExpiration)
	return info, true
}

// IsKnown reports whether alpha2 names a country in the dataset.
func (cs *CountryService) IsKnown(alpha2 string) bool {
	_, ok := cs.Resolve(alpha2)
	return ok
}

// All returns every known country sorted ascending by alpha-2 code.
//
// The slice is shared: callers must treat it as read-only.
func (cs *CountryService) All() []CountryInfo {
	return cs.all
}

// SupportedCountries assembles the /supported-countries response.
func (cs *CountryService) SupportedCountries() *CountriesResponse {
	return &CountriesResponse{
		Total:     len(cs.all),
		Countries: cs.all,
	}
}
