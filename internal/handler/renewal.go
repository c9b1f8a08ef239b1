package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
)

// RenewalHandler covers residency renewal requests: students open
// them, admins list and decide them.
type RenewalHandler struct {
	Renewals *repository.RenewalRepo
}

func NewRenewalHandler(renewals *repository.RenewalRepo) *RenewalHandler {
	if renewals == nil {
		panic("nil repository passed to NewRenewalHandler")
	}
	return &RenewalHandler{Renewals: renewals}
}

// Create handles POST /v1/renewals.  The request always opens in the
// Requested state for the calling student; repeated requests are
// allowed and simply accumulate.
func (h *RenewalHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ren, err := h.Renewals.Create(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, ren)
}

// List handles GET /v1/renewals?hall_id=.  The hall filter joins
// through the requesting user's hall on record.
func (h *RenewalHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rens, err := h.Renewals.List(ctx, queryUint(c, "hall_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rens == nil {
		rens = []*model.Renewal{}
	}
	return c.JSON(http.StatusOK, rens)
}

// SetStatus handles PUT /v1/renewals/:id/status.
func (h *RenewalHandler) SetStatus(c echo.Context) error {
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
	if !model.ValidRenewalStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Renewals.SetStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "renewal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
