package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
)

// RegisterCommon registers the read endpoints shared by every
// authenticated role.  Handlers that return user-owned data (such as
// applications and complaints) scope the result by role internally.
func RegisterCommon(e *echo.Echo, forms *handler.FormHandler, apps *handler.ApplicationHandler, seats *handler.SeatHandler, cmps *handler.ComplaintHandler, notes *handler.NotificationHandler, results, plans *handler.UploadHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStudent, model.RoleAdmin, model.RoleStaff, model.RoleExamController),
	)
	g.GET("/forms/active", forms.Active)
	g.GET("/applications", apps.List)
	g.GET("/seats", seats.List)
	g.GET("/complaints", cmps.List)
	g.GET("/notifications", notes.List)
	g.GET("/results", results.List)
	g.GET("/seat-plans", plans.List)
}
