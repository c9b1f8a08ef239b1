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

// FormHandler manages form definitions.  Creation, editing and
// activation are admin operations; students only read the active
// form for their hall.
type FormHandler struct {
	Forms *repository.FormRepo
}

func NewFormHandler(forms *repository.FormRepo) *FormHandler {
	return &FormHandler{Forms: forms}
}

type formReq struct {
	Name   string            `json:"name"`
	HallID *uint64           `json:"hall_id"`
	Schema []model.FieldSpec `json:"schema"`
}

func validateSchema(schema []model.FieldSpec) string {
	seen := make(map[string]bool, len(schema))
	for _, f := range schema {
		if strings.TrimSpace(f.ID) == "" {
			return "field id required"
		}
		if seen[f.ID] {
			return "duplicate field id: " + f.ID
		}
		seen[f.ID] = true
		if !model.ValidFieldType(f.Type) {
			return "invalid field type: " + f.Type
		}
	}
	return ""
}

// List handles GET /v1/forms.  The hall_id query narrows to one
// scope; hall_id=global selects global forms only.
func (h *FormHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	filterScope := false
	var hallID *uint64
	switch q := c.QueryParam("hall_id"); q {
	case "":
	case "global":
		filterScope = true
	default:
		if id := queryUint(c, "hall_id"); id != 0 {
			filterScope = true
			hallID = &id
		}
	}

	forms, err := h.Forms.List(ctx, filterScope, hallID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if forms == nil {
		forms = []*model.FormDefinition{}
	}
	return c.JSON(http.StatusOK, forms)
}

// Create handles POST /v1/forms.  New definitions start inactive.
func (h *FormHandler) Create(c echo.Context) error {
	var req formReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if msg := validateSchema(req.Schema); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := &model.FormDefinition{Name: strings.TrimSpace(req.Name), HallID: req.HallID, Schema: req.Schema}
	if err := h.Forms.Create(ctx, f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, f)
}

// Get handles GET /v1/forms/:id.
func (h *FormHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "form not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, f)
}

// Update handles PUT /v1/forms/:id and replaces name, scope and
// schema wholesale.  The previous field list is discarded.
func (h *FormHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req formReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if msg := validateSchema(req.Schema); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := &model.FormDefinition{ID: id, Name: strings.TrimSpace(req.Name), HallID: req.HallID, Schema: req.Schema}
	if err := h.Forms.Replace(ctx, f); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "form not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.Forms.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusOK, f)
	}
	return c.JSON(http.StatusOK, fresh)
}

// Activate handles POST /v1/forms/:id/activate.  Every other form
// in the target scope is deactivated and the named form is rebound
// to that scope, so activation can move a form between halls.
func (h *FormHandler) Activate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		HallID *uint64 `json:"hall_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Forms.SetActive(ctx, id, req.HallID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "form not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "activate failed"})
	}
	f, err := h.Forms.GetByID(ctx, id)
	if err != nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, f)
}

// Active handles GET /v1/forms/active.  Students get the active
// form for their own hall with fallback to the global active form;
// an explicit hall_id query overrides for admin previews.
func (h *FormHandler) Active(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var hallID *uint64
	if id := queryUint(c, "hall_id"); id != 0 {
		hallID = &id
	} else if id := getHallID(c); id != 0 {
		hallID = &id
	}

	f, err := h.Forms.GetActive(ctx, hallID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active form"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, f)
}
