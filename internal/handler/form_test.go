package handler

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
)

func newFormHandler(t *testing.T) (*FormHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewFormHandler(repository.NewFormRepo(db)), mock
}

func TestFormCreateRejectsDuplicateFieldIDs(t *testing.T) {
	h, _ := newFormHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/v1/forms",
		`{"name":"F","schema":[{"id":"a","label":"A","type":"text"},{"id":"a","label":"B","type":"text"}]}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate")
}

func TestFormCreateRejectsUnknownFieldType(t *testing.T) {
	h, _ := newFormHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/v1/forms",
		`{"name":"F","schema":[{"id":"a","label":"A","type":"textarea"}]}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormCreateStartsInactive(t *testing.T) {
	h, mock := newFormHandler(t)
	e := echo.New()

	schemaJSON := `[{"id":"a","label":"A","type":"text","required":false,"score":5}]`
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO forms")).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM forms WHERE id=?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "hall_id", "schema_json", "created_at"}).
			AddRow(4, "F", false, nil, schemaJSON, time.Now()))

	c, rec := postJSON(e, "/v1/forms",
		`{"name":"F","schema":[{"id":"a","label":"A","type":"text","score":5}]}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormActiveFallsBackToJWTHall(t *testing.T) {
	h, mock := newFormHandler(t)
	e := echo.New()

	schemaJSON := `[{"id":"a","label":"A","type":"text","required":false,"score":5}]`
	mock.ExpectQuery(regexp.QuoteMeta("FROM forms WHERE active=1 AND hall_id=?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "hall_id", "schema_json", "created_at"}).
			AddRow(2, "Hall Form", true, 3, schemaJSON, time.Now()))

	c, rec := postJSON(e, "/v1/forms/active", ``)
	c.Set("role", model.RoleStudent)
	c.Set("hall_id", uint64(3))

	require.NoError(t, h.Active(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hall_id":3`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
