package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"idcard-backend/internal/domain/user"
)

// userContextKey is where RequireAuth stores the resolved user on the echo
// context. Handlers read it back through CurrentUser; nothing is global.
const userContextKey = "auth.user"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.User, error)
}

// RequireAuth resolves the bearer token to a user and attaches it to the
// request context. 401 on anything missing, unknown or expired.
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			u, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			}
			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// RequireAdmin runs after RequireAuth and rejects non-admin roles.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			if !u.Role.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, or nil outside RequireAuth.
func CurrentUser(c echo.Context) *user.User {
	u, _ := c.Get(userContextKey).(*user.User)
	return u
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
