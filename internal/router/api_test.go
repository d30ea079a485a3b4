package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/phone-lookup-api/internal/config"
	"github.com/deppfellow/phone-lookup-api/internal/handler"
	"github.com/deppfellow/phone-lookup-api/internal/middleware"
	"github.com/deppfellow/phone-lookup-api/internal/server"
	"github.com/deppfellow/phone-lookup-api/internal/service"
)

const testToken = "test-token"

// newTestApp assembles the full middleware + router stack the way main
// does, minus the listener.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         "8000",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  5,
			Workers:      1,
			CORSOrigins:  "*",
		},
		Auth:          config.AuthConfig{Token: testToken},
		Observability: config.DefaultObservabilityConfig(),
	}

	log := zerolog.Nop()
	srv := server.New(cfg, &log, nil)

	mws := middleware.NewMiddlewares(srv)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)

	return New(mws, handlers)
}

func doRequest(t *testing.T, app http.Handler, target, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthIsUnauthenticated(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Phone Number Lookup API", body["service"])
	// testToken differs from the dev default.
	assert.Equal(t, true, body["api_token_configured"])
}

func TestProtectedEndpointsRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{
		"/lookup?phone=%2B14155552671",
		"/validate?phone=%2B14155552671",
		"/supported-countries",
	} {
		rec := doRequest(t, app, target, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)

		body := decodeJSON(t, rec)
		assert.Equal(t, "UNAUTHORIZED", body["code"], target)
		// The handler never ran: no business fields in the body.
		assert.NotContains(t, body, "is_valid", target)
		assert.NotContains(t, body, "countries", target)
	}
}

func TestProtectedEndpointsRejectWrongToken(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/lookup?phone=%2B14155552671", "wrong-token")
	require.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.NotContains(t, body, "phone_number")
}

func TestLookupSuccess(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/lookup?phone=14155552671&country=US", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "+14155552671", body["formatted_e164"])
	assert.Equal(t, "(415) 555-2671", body["formatted_national"])
	assert.Equal(t, "US", body["country_code"])
	assert.Equal(t, "United States", body["country_name"])
	assert.Equal(t, true, body["is_valid"])
	assert.Equal(t, true, body["is_possible"])
}

func TestLookupMissingPhone(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/lookup", testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["code"])
}

func TestLookupUnparsableNumber(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/lookup?phone=123", testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["code"])
	assert.NotContains(t, body, "phone_number")
}

func TestLookupRequiresCountryForNationalNumbers(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/lookup?phone=4155552671", testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupRejectsBadCountryParam(t *testing.T) {
	app := newTestApp(t)

	// Fails tag validation before any parsing happens.
	rec := doRequest(t, app, "/lookup?phone=4155552671&country=XYZ", testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateSuccess(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/validate?phone=%2B14155552671", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, true, body["is_valid"])
	assert.Equal(t, "(415) 555-2671", body["formatted_national"])
	assert.Equal(t, "+14155552671", body["formatted_e164"])
}

// /validate reports unparsable input as data with a 200, never as an
// HTTP error. Only a missing phone parameter is a bad request.
func TestValidateAsymmetry(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/validate?phone=123", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, false, body["is_valid"])
	assert.Equal(t, false, body["is_possible"])
	assert.NotEmpty(t, body["error"])

	rec = doRequest(t, app, "/validate", testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSupportedCountries(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/supported-countries", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total     int `json:"total"`
		Countries []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Greater(t, body.Total, 200)
	assert.Len(t, body.Countries, body.Total)

	var foundUS bool
	for i, c := range body.Countries {
		if i > 0 {
			assert.Less(t, body.Countries[i-1].Code, c.Code, "countries must be sorted by code")
		}
		if c.Code == "US" {
			foundUS = true
			assert.Equal(t, "United States", c.Name)
		}
	}
	assert.True(t, foundUS)
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, "/nope", testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
