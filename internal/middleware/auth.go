package middleware

import (
	"net/http"
	"strings"

	"toko-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "user_id"
	contextKeyEmail  = "user_email"
)

// RequireAuth parses the bearer token and places the verified identity in
// the request context. Expiry is the only invalidation mechanism.
func RequireAuth(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header is missing")
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must be a bearer token")
			}

			claims, err := issuer.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(contextKeyUserID, claims.UserID)
			c.Set(contextKeyEmail, claims.Email)
			return next(c)
		}
	}
}

func UserID(c echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}

func UserEmail(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)
	return email
}
