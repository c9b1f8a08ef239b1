package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
)

// ComplaintHandler covers student complaints and their review by hall
// staff.  Only students may file; the filer's hall is stamped from
// the user record, never from the request.
type ComplaintHandler struct {
	Complaints *repository.ComplaintRepo
	Users      *repository.UserRepo
}

func NewComplaintHandler(complaints *repository.ComplaintRepo, users *repository.UserRepo) *ComplaintHandler {
	if complaints == nil || users == nil {
		panic("nil repository passed to NewComplaintHandler")
	}
	return &ComplaintHandler{Complaints: complaints, Users: users}
}

type complaintReq struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments"`
}

// Create handles POST /v1/complaints.
func (h *ComplaintHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req complaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	cm := &model.Complaint{Title: req.Title, Body: req.Body, Attachments: req.Attachments}
	if err := h.Complaints.Create(ctx, user, cm); err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only students can file complaints"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, cm)
}

// List handles GET /v1/complaints.  Students see only their own
// complaints; admins and staff filter by user_id or hall_id.
func (h *ComplaintHandler) List(c echo.Context) error {
	userID := queryUint(c, "user_id")
	if getRole(c) == model.RoleStudent {
		uid, err := getUserID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		userID = uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cms, err := h.Complaints.List(ctx, userID, queryUint(c, "hall_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if cms == nil {
		cms = []*model.Complaint{}
	}
	return c.JSON(http.StatusOK, cms)
}

type complaintStatusReq struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"review_notes"`
}

// SetStatus handles PUT /v1/complaints/:id/status.  The reviewing
// user is stamped from the JWT.
func (h *ComplaintHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req complaintStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidComplaintStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	var reviewedBy *uint64
	if uid, err := getUserID(c); err == nil {
		reviewedBy = &uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Complaints.SetStatus(ctx, id, req.Status, reviewedBy, req.ReviewNotes); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "complaint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
