package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
)

// NotificationHandler serves the append-only notice board.
type NotificationHandler struct {
	Notifications *repository.NotificationRepo
}

func NewNotificationHandler(notifications *repository.NotificationRepo) *NotificationHandler {
	if notifications == nil {
		panic("nil repository passed to NewNotificationHandler")
	}
	return &NotificationHandler{Notifications: notifications}
}

type notificationReq struct {
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	HallID *uint64 `json:"hall_id"`
}

// Create handles POST /v1/notifications.  A nil hall_id publishes to
// every hall.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req notificationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n := &model.Notification{Title: req.Title, Body: req.Body, HallID: req.HallID}
	if err := h.Notifications.Create(ctx, n); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, n)
}

// List handles GET /v1/notifications?hall_id=.  With a hall filter the
// result includes both that hall's notices and the global ones.
// Without one, students see their own hall's board while staff roles
// see every notice.
func (h *NotificationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hallID := queryUint(c, "hall_id")
	if hallID == 0 && getRole(c) == model.RoleStudent {
		hallID = getHallID(c)
	}

	ns, err := h.Notifications.List(ctx, hallID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if ns == nil {
		ns = []*model.Notification{}
	}
	return c.JSON(http.StatusOK, ns)
}
