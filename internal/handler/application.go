package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/queue"
	"github.com/unihall/hall-allotment/internal/repository"
	queuepublisher "github.com/unihall/hall-allotment/internal/service"
)

// ApplicationHandler owns the application lifecycle: student
// submission, admin listing, status and payment mutation, and the
// derived waitlist view.
type ApplicationHandler struct {
	Apps  *repository.ApplicationRepo
	Forms *repository.FormRepo
	Users *repository.UserRepo
}

func NewApplicationHandler(apps *repository.ApplicationRepo, forms *repository.FormRepo, users *repository.UserRepo) *ApplicationHandler {
	if apps == nil || forms == nil || users == nil {
		panic("nil repository passed to NewApplicationHandler")
	}
	return &ApplicationHandler{Apps: apps, Forms: forms, Users: users}
}

type submitReq struct {
	FormID      uint64                      `json:"form_id"`
	Data        map[string]model.FieldValue `json:"data"`
	Attachments map[string]string           `json:"attachments"`
}

// Submit handles POST /v1/applications.  The caller's hall is
// resolved from the user record at call time and copied onto the
// application; required fields are validated against the form
// schema and the score is computed and stored with the record.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.FormID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "form_id required"})
	}
	if req.Data == nil {
		req.Data = map[string]model.FieldValue{}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	form, err := h.Forms.GetByID(ctx, req.FormID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "form not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load form failed"})
	}
	if missing := form.MissingRequired(req.Data); len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "required fields missing: " + strings.Join(missing, ", ")})
	}

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	app := &model.Application{
		UserID:      uid,
		FormID:      form.ID,
		HallID:      user.HallID,
		Data:        req.Data,
		Attachments: req.Attachments,
		Status:      model.StatusSubmitted,
		PaymentDone: false,
		Score:       form.Score(req.Data),
	}
	if err := h.Apps.Create(ctx, app); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}

	ev := queue.ApplicationSubmittedEvent{
		ApplicationID: app.ID,
		UserID:        uid,
		FormID:        form.ID,
		FormName:      form.Name,
		Score:         app.Score,
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if user.HallID != nil {
		ev.HallID = *user.HallID
	}
	go func() { _ = queuepublisher.PublishApplicationSubmitted(context.Background(), ev) }()

	return c.JSON(http.StatusCreated, app)
}

// List handles GET /v1/applications with an intersection filter on
// user_id, hall_id and form_id.  Students are pinned to their own
// submissions regardless of the query.
func (h *ApplicationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := repository.ApplicationFilter{
		UserID: queryUint(c, "user_id"),
		HallID: queryUint(c, "hall_id"),
		FormID: queryUint(c, "form_id"),
	}
	if getRole(c) == model.RoleStudent {
		uid, err := getUserID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		f.UserID = uid
	}

	apps, err := h.Apps.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if apps == nil {
		apps = []*model.Application{}
	}
	return c.JSON(http.StatusOK, apps)
}

// SetStatus handles PUT /v1/applications/:id/status.  The overwrite
// is unconditional: any status is reachable from any status, and
// payment is untouched.  Missing records yield 404.
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidApplicationStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Apps.SetStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if req.Status == model.StatusApproved || req.Status == model.StatusRejected {
		if app, err := h.Apps.GetByID(ctx, id); err == nil {
			ev := queue.ApplicationDecidedEvent{
				ApplicationID: app.ID,
				UserID:        app.UserID,
				Status:        app.Status,
				PaymentDone:   app.PaymentDone,
				DecidedAt:     time.Now().UTC().Format(time.RFC3339),
			}
			if app.HallID != nil {
				ev.HallID = *app.HallID
			}
			go func() { _ = queuepublisher.PublishApplicationDecided(context.Background(), ev) }()
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// SetPayment handles PUT /v1/applications/:id/payment.  Payment is
// orthogonal to status; recording or clearing it never alters the
// status column.
func (h *ApplicationHandler) SetPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Paid bool `json:"paid"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Apps.SetPayment(ctx, id, req.Paid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Waitlist handles GET /v1/waitlist: applications approved but not
// yet paid, optionally per hall.  Always recomputed from current
// application state; there is no stored waitlist and no position
// guarantee beyond store insertion order.
func (h *ApplicationHandler) Waitlist(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	apps, err := h.Apps.Waitlist(ctx, queryUint(c, "hall_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if apps == nil {
		apps = []*model.Application{}
	}
	return c.JSON(http.StatusOK, apps)
}
