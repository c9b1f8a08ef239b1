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

// SeatHandler exposes the per-hall seat inventory.  Listing is open
// to any authenticated user; mutation is admin-only and wired as such
// in the router.
type SeatHandler struct {
	Seats *repository.SeatRepo
}

func NewSeatHandler(seats *repository.SeatRepo) *SeatHandler {
	if seats == nil {
		panic("nil repository passed to NewSeatHandler")
	}
	return &SeatHandler{Seats: seats}
}

// List handles GET /v1/seats?hall_id=&status=.
func (h *SeatHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !model.ValidSeatStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seats, err := h.Seats.List(ctx, queryUint(c, "hall_id"), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if seats == nil {
		seats = []*model.Seat{}
	}
	return c.JSON(http.StatusOK, seats)
}

type seatPatchReq struct {
	Status    *string `json:"status"`
	StudentID *string `json:"student_id"`
}

// Update handles PUT /v1/seats/:id.  Status and student assignment
// are patched independently; an explicit empty student_id clears the
// assignment.
func (h *SeatHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req seatPatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status == nil && req.StudentID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	if req.Status != nil && !model.ValidSeatStatus(*req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	p := repository.SeatPatch{Status: req.Status, StudentID: req.StudentID}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Seats.Update(ctx, id, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	seat, err := h.Seats.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reload failed"})
	}
	return c.JSON(http.StatusOK, seat)
}

// Assign handles POST /v1/seats/:id/assign: shorthand for setting the
// student and flipping the seat to Occupied in one call.
func (h *SeatHandler) Assign(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		StudentID string `json:"student_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.StudentID = strings.TrimSpace(req.StudentID)
	if req.StudentID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Seats.Assign(ctx, id, req.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "assign failed"})
	}

	seat, err := h.Seats.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reload failed"})
	}
	return c.JSON(http.StatusOK, seat)
}
