package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCountryService() *CountryService {
	// The country service never touches the server container in tests;
	// the dataset is embedded.
	return NewCountryService(nil)
}

func TestResolveKnownCountry(t *testing.T) {
	cs := newTestCountryService()

	info, ok := cs.Resolve("US")
	require.True(t, ok)
	assert.Equal(t, "US", info.Code)
	assert.Equal(t, "United States", info.Name)
	assert.Equal(t, "USA", info.Alpha3)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	cs := newTestCountryService()

	lower, ok := cs.Resolve("de")
	require.True(t, ok)
	upper, ok2 := cs.Resolve("DE")
	require.True(t, ok2)

	assert.Equal(t, upper, lower)
	assert.Equal(t, "Germany", lower.Name)
}

func TestResolveUnknownCodes(t *testing.T) {
	cs := newTestCountryService()

	for _, code := range []string{"", "  ", "ZZ", "001", "USA2"} {
		_, ok := cs.Resolve(code)
		assert.False(t, ok, "code %q should not resolve", code)
	}
}

func TestResolveCachedHitMatchesMiss(t *testing.T) {
	cs := newTestCountryService()

	first, ok := cs.Resolve("FR")
	require.True(t, ok)

	// Second call is served from the cache; must be identical.
	second, ok := cs.Resolve("FR")
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestAllIsStableAndSorted(t *testing.T) {
	cs := newTestCountryService()

	all := cs.All()
	require.NotEmpty(t, all)

	// The ISO 3166-1 set is ~249 entries; guard against a truncated
	// dataset without pinning the exact count.
	assert.Greater(t, len(all), 200)

	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Code < all[j].Code
	}))

	// Size is stable across calls.
	assert.Equal(t, len(all), len(cs.All()))

	var found bool
	for _, c := range all {
		if c.Code == "US" {
			found = true
			assert.Equal(t, "United States", c.Name)
		}
	}
	assert.True(t, found, "US must be present")
}

func TestSupportedCountriesResponse(t *testing.T) {
	cs := newTestCountryService()

	resp := cs.SupportedCountries()
	assert.Equal(t, len(cs.All()), resp.Total)
	assert.Equal(t, cs.All(), resp.Countries)
}
