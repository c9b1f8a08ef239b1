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

func newGetContext(e *echo.Echo, route, target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(route)
	return c
}

func TestCacheKeyDiffersPerUser(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "unihall:cache", KeyStrategy: "route_query"}

	a := newGetContext(e, "/v1/applications", "/v1/applications")
	a.Set("user_id", uint64(1))
	b := newGetContext(e, "/v1/applications", "/v1/applications")
	b.Set("user_id", uint64(2))

	assert.NotEqual(t, cacheKeyFrom(cfg, a), cacheKeyFrom(cfg, b))

	again := newGetContext(e, "/v1/applications", "/v1/applications")
	again.Set("user_id", uint64(1))
	assert.Equal(t, cacheKeyFrom(cfg, a), cacheKeyFrom(cfg, again))
}

func TestCacheKeyReadsBearerSubject(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "unihall:cache", KeyStrategy: "route_query"}

	tok, err := utils.NewAccessToken("secret", 7, "student", 2, 15)
	require.NoError(t, err)

	withHeader := newGetContext(e, "/v1/applications", "/v1/applications")
	withHeader.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+tok.Token)

	withClaim := newGetContext(e, "/v1/applications", "/v1/applications")
	withClaim.Set("user_id", uint64(7))

	anon := newGetContext(e, "/v1/applications", "/v1/applications")

	assert.Equal(t, cacheKeyFrom(cfg, withClaim), cacheKeyFrom(cfg, withHeader))
	assert.NotEqual(t, cacheKeyFrom(cfg, anon), cacheKeyFrom(cfg, withHeader))
}

func TestCacheablePath(t *testing.T) {
	prefixes := []string{"/v1/halls"}

	assert.True(t, cacheablePath(prefixes, "/v1/halls"))
	assert.True(t, cacheablePath(prefixes, "/v1/halls/:id"))
	assert.False(t, cacheablePath(prefixes, "/v1/applications"))
	assert.False(t, cacheablePath(prefixes, "/v1/me"))
	assert.False(t, cacheablePath(nil, "/v1/halls"))
}
