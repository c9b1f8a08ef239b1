package router

import (
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
)

// RegisterExamController registers the publishing endpoints reserved
// for the exam controller: per-hall result sheets and exam seat plans.
func RegisterExamController(e *echo.Echo, results, plans *handler.UploadHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleExamController),
	)
	g.POST("/results", results.Create)
	g.POST("/seat-plans", plans.Create)
}
