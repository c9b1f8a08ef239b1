package middleware

// identity.go provides the caller-identity helper shared by the rate
// limiter and the response cache. Both run before JWTAuth, so when the
// context carries no user yet the bearer token is parsed without
// signature verification just to read its subject. The value keys
// buckets and cache entries; it never authorizes anything.

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// currentUserID renders a caller identity for limiter and cache keys.
// Unauthenticated requests share the "anon" identity.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	return bearerSubject(c)
}

// bearerSubject extracts the sub claim from the Authorization header,
// if any. The token is not verified here; JWTAuth does that later.
func bearerSubject(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "anon"
	}
	tok, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(auth[len(prefix):]), jwt.MapClaims{})
	if err != nil {
		return "anon"
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "anon"
	}
	switch v := claims["sub"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	}
	return "anon"
}
