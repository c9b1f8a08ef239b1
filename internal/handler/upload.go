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

// UploadHandler serves exam-controller documents: result sheets and
// seat plans.  Publishing is restricted to the exam controller role
// in the router; reading is open to any authenticated user.
type UploadHandler struct {
	Uploads *repository.UploadRepo
	Kind    string
}

func NewUploadHandler(uploads *repository.UploadRepo, kind string) *UploadHandler {
	if uploads == nil {
		panic("nil repository passed to NewUploadHandler")
	}
	if kind != model.UploadResult && kind != model.UploadSeatPlan {
		panic("unknown upload kind: " + kind)
	}
	return &UploadHandler{Uploads: uploads, Kind: kind}
}

type uploadReq struct {
	HallID  uint64 `json:"hall_id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Create handles POST /v1/results and POST /v1/seat-plans.  The raw
// content is stored as-is and comma-split into rows at publish time.
func (h *UploadHandler) Create(c echo.Context) error {
	var req uploadReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.HallID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hall_id required"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := &model.Upload{
		Kind:    h.Kind,
		HallID:  req.HallID,
		Name:    req.Name,
		Content: req.Content,
		Rows:    parseRows(req.Content),
	}
	if err := h.Uploads.Create(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, u)
}

// List handles GET /v1/results and GET /v1/seat-plans with an
// optional hall_id filter.
func (h *UploadHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	us, err := h.Uploads.List(ctx, h.Kind, queryUint(c, "hall_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if us == nil {
		us = []*model.Upload{}
	}
	return c.JSON(http.StatusOK, us)
}

// parseRows splits the uploaded text into comma-separated rows,
// skipping blank lines.  Cell whitespace is trimmed.
func parseRows(content string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}
