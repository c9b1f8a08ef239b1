package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
)

// RegisterAdmin registers admin-scoped endpoints under /v1.  All
// routes require a valid JWT and the admin role.  Admins own form
// definitions, application decisions, the seat inventory, renewal
// decisions, hall reassignment and the notice board.
func RegisterAdmin(e *echo.Echo, forms *handler.FormHandler, apps *handler.ApplicationHandler, seats *handler.SeatHandler, rens *handler.RenewalHandler, notes *handler.NotificationHandler, users *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Forms ----
	g.POST("/forms", forms.Create)
	g.GET("/forms", forms.List)
	g.GET("/forms/:id", forms.Get)
	g.PUT("/forms/:id", forms.Update)
	g.POST("/forms/:id/activate", forms.Activate)

	// ---- Applications ----
	g.PUT("/applications/:id/status", apps.SetStatus)
	g.PUT("/applications/:id/payment", apps.SetPayment)
	g.GET("/waitlist", apps.Waitlist)

	// ---- Seats ----
	g.PUT("/seats/:id", seats.Update)
	g.PATCH("/seats/:id", seats.Update)
	g.POST("/seats/:id/assign", seats.Assign)

	// ---- Renewals ----
	g.GET("/renewals", rens.List)
	g.PUT("/renewals/:id/status", rens.SetStatus)

	// ---- Notifications ----
	g.POST("/notifications", notes.Create)

	// ---- Users ----
	g.PUT("/users/:id/hall", users.SetHall)
}

// RegisterReview registers complaint review for admins and hall staff.
func RegisterReview(e *echo.Echo, cmps *handler.ComplaintHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleStaff),
	)
	g.PUT("/complaints/:id/status", cmps.SetStatus)
}
