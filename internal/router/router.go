// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints.  Hall
// profiles are public so applicants can inspect halls before signing up.
func RegisterPublic(e *echo.Echo, h *handler.HallHandler) {
	e.GET("/v1/halls", h.List)
	e.GET("/v1/halls/:id", h.Get)
}
