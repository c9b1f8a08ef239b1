package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihall/hall-allotment/internal/config"
	"github.com/unihall/hall-allotment/internal/utils"
)

// The limiter runs before JWTAuth, so the user key dimension must come
// from the bearer token itself, not from context claims.
func TestRateKeyUserFromBearerToken(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Prefix: "unihall:rl", KeyStrategy: "user"}

	tok, err := utils.NewAccessToken("secret", 42, "student", 2, 15)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/applications", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.Token)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/applications")

	assert.Equal(t, "unihall:rl:user:42", buildRateKey(cfg, c))
}

func TestRateKeyAnonWithoutToken(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Prefix: "unihall:rl", KeyStrategy: "user"}

	req := httptest.NewRequest(http.MethodGet, "/v1/halls", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/halls")

	assert.Equal(t, "unihall:rl:user:anon", buildRateKey(cfg, c))

	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	assert.Equal(t, "unihall:rl:user:anon", buildRateKey(cfg, c))
}
