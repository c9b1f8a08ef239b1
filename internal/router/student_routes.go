package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
)

// RegisterStudent registers student-scoped endpoints under /v1.  All
// routes require a valid JWT and the student role.  Students submit
// applications, request residency renewals and file complaints.
func RegisterStudent(e *echo.Echo, apps *handler.ApplicationHandler, rens *handler.RenewalHandler, cmps *handler.ComplaintHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStudent),
	)
	g.POST("/applications", apps.Submit)
	g.POST("/renewals", rens.Create)
	g.POST("/complaints", cmps.Create)
}
