package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/tokens"
)

// Middleware guards routes with the session token issued at login.
type Middleware struct {
	JWTSecret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{JWTSecret: secret}
}

func (m *Middleware) claimsFrom(c echo.Context) (*tokens.AccessClaims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth rejects unauthenticated requests and stores the caller's
// identity in the echo context under user_id, phone and role.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFrom(c)
		if err != nil {
			return err
		}
		setUserContext(c, claims)
		return next(c)
	}
}

// AdminOnly additionally requires the admin role.
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFrom(c)
		if err != nil {
			return err
		}
		if claims.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set("user_id", claims.Subject)
	c.Set("phone", claims.Phone)
	c.Set("role", claims.Role)
}
