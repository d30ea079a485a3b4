package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/phone-lookup-api/internal/config"
	"github.com/deppfellow/phone-lookup-api/internal/errs"
	"github.com/deppfellow/phone-lookup-api/internal/server"
)

func newTestAuthMiddleware(token string) *AuthMiddleware {
	cfg := &config.Config{
		Auth:          config.AuthConfig{Token: token},
		Observability: config.DefaultObservabilityConfig(),
	}
	log := zerolog.Nop()
	return NewAuthMiddleware(server.New(cfg, &log, nil))
}

// invokeRequireToken runs the middleware against a sentinel handler and
// reports whether the handler was reached plus any error returned.
func invokeRequireToken(t *testing.T, auth *AuthMiddleware, token string) (bool, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/lookup", nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var handlerRan bool
	err := auth.RequireToken(func(echo.Context) error {
		handlerRan = true
		return nil
	})(c)
	return handlerRan, err
}

func TestRequireTokenMissingHeader(t *testing.T) {
	auth := newTestAuthMiddleware("secret")

	ran, err := invokeRequireToken(t, auth, "")
	assert.False(t, ran)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireTokenWrongToken(t *testing.T) {
	auth := newTestAuthMiddleware("secret")

	for _, supplied := range []string{"wrong!", "secre", "secretx", "SECRET"} {
		ran, err := invokeRequireToken(t, auth, supplied)
		assert.False(t, ran, supplied)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, supplied)
		assert.Equal(t, http.StatusForbidden, httpErr.Status, supplied)
	}
}

func TestRequireTokenMatch(t *testing.T) {
	auth := newTestAuthMiddleware("secret")

	ran, err := invokeRequireToken(t, auth, "secret")
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestTokenMatches(t *testing.T) {
	assert.True(t, tokenMatches("dev-token", "dev-token"))
	assert.False(t, tokenMatches("dev-token", "dev-token2"))
	assert.False(t, tokenMatches("", "dev-token"))
	assert.False(t, tokenMatches("DEV-TOKEN", "dev-token"))
}
