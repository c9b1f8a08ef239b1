package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
)

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new
	// access token without rotating.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body and does not require
	// a JWT; with a valid access token and no body it revokes every
	// session of the caller.
	g.POST("/logout", a.Logout)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStudent, model.RoleAdmin, model.RoleStaff, model.RoleExamController),
	)
	auth.GET("/me", a.Me)
}
