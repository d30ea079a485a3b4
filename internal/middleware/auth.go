package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phone-lookup-api/internal/errs"
	"github.com/deppfellow/phone-lookup-api/internal/server"
)

// TokenHeader is the header every protected endpoint is authenticated
// with.
const TokenHeader = "X-API-TOKEN"

// AuthMiddleware holds the app Server so middleware can access shared
// deps like Logger and Config.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireToken is an Echo middleware that enforces the static API token.
//
// Behavior:
//   - Missing X-API-TOKEN header -> 401, handler never runs.
//   - Header present but not equal to the configured token -> 403,
//     handler never runs.
//   - Match -> request continues down the chain.
//
// The comparison uses crypto/subtle so the check does not leak token
// prefixes through timing. The token value itself is never logged.
func (auth *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplied := c.Request().Header.Get(TokenHeader)
		if supplied == "" {
			GetLogger(c).Warn().
				Str("function", "RequireToken").
				Str("request_id", GetRequestID(c)).
				Msg("request without API token rejected")

			return errs.NewUnauthorizedError("Missing API token", false)
		}

		if !tokenMatches(supplied, auth.server.Config.Auth.Token) {
			GetLogger(c).Warn().
				Str("function", "RequireToken").
				Str("request_id", GetRequestID(c)).
				Msg("request with invalid API token rejected")

			return errs.NewForbiddenError("Invalid API token", false)
		}

		return next(c)
	}
}

// tokenMatches compares the supplied token against the configured one in
// constant time.
//
// subtle.ConstantTimeCompare requires equal lengths to stay constant
// time, so unequal lengths are rejected up front; that only reveals the
// token's length, not its content.
func tokenMatches(supplied, configured string) bool {
	if len(supplied) != len(configured) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) == 1
}
