package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
	"github.com/unihall/hall-allotment/internal/utils"
)

// HallHandler serves the hall reference data.
type HallHandler struct {
	Halls *repository.HallRepo
}

func NewHallHandler(halls *repository.HallRepo) *HallHandler {
	return &HallHandler{Halls: halls}
}

type hallResp struct {
	model.Hall
	Image string `json:"image"`
}

func toHallResp(h *model.Hall) hallResp {
	return hallResp{Hall: *h, Image: utils.HallImage(h)}
}

// List handles GET /v1/halls.
func (h *HallHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	halls, err := h.Halls.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]hallResp, 0, len(halls))
	for _, hall := range halls {
		out = append(out, toHallResp(hall))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/halls/:id.
func (h *HallHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toHallResp(hall))
}
