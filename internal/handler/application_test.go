package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/repository"
)

const submitSchemaJSON = `[` +
	`{"id":"name","label":"Full Name","type":"text","required":true,"score":0},` +
	`{"id":"cgpa","label":"CGPA","type":"number","required":true,"score":30},` +
	`{"id":"distance","label":"Home Distance","type":"dropdown","options":["<50km",">150km"],"score":20}` +
	`]`

func newApplicationHandler(t *testing.T) (*ApplicationHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewApplicationHandler(
		repository.NewApplicationRepo(db),
		repository.NewFormRepo(db),
		repository.NewUserRepo(db)), mock
}

func expectFormLookup(mock sqlmock.Sqlmock, id uint64) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM forms WHERE id=?")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "hall_id", "schema_json", "created_at"}).
			AddRow(id, "Allotment Form", true, nil, submitSchemaJSON, time.Now()))
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	h, mock := newApplicationHandler(t)
	e := echo.New()

	expectFormLookup(mock, 1)

	c, rec := postJSON(e, "/v1/applications",
		`{"form_id":1,"data":{"name":"Rahim"}}`)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CGPA")
	assert.NoError(t, mock.ExpectationsWereMet()) // no insert attempted
}

func TestSubmitScoresAndStampsHall(t *testing.T) {
	h, mock := newApplicationHandler(t)
	e := echo.New()

	now := time.Now()
	expectFormLookup(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id=?")).
		WithArgs(5).
		WillReturnRows(userRows().
			AddRow(5, "Rahim", "rahim@student.nstu.edu.bd", "x", model.RoleStudent, "MUH2025-0001", 2, true, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO applications")).
		WillReturnResult(sqlmock.NewResult(11, 1))

	c, rec := postJSON(e, "/v1/applications",
		`{"form_id":1,"data":{"name":"Rahim","cgpa":"3.75","distance":">150km"}}`)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":11`)
	assert.Contains(t, body, `"score":50`)
	assert.Contains(t, body, `"hall_id":2`)
	assert.Contains(t, body, `"status":"Submitted"`)
	assert.Contains(t, body, `"payment_done":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitUnknownFormIs404(t *testing.T) {
	h, mock := newApplicationHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM forms WHERE id=?")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	c, rec := postJSON(e, "/v1/applications", `{"form_id":42,"data":{}}`)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	h, _ := newApplicationHandler(t)
	e := echo.New()

	c, rec := putJSON(e, "/v1/applications/3/status", `{"status":"Withdrawn"}`, "3")
	c.Set("user_id", uint64(1))
	c.Set("role", model.RoleAdmin)

	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetPaymentMissingApplicationIs404(t *testing.T) {
	h, mock := newApplicationHandler(t)
	e := echo.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET payment_done=? WHERE id=?")).
		WithArgs(true, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM applications WHERE id=?")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	c, rec := putJSON(e, "/v1/applications/99/payment", `{"paid":true}`, "99")
	c.Set("user_id", uint64(1))
	c.Set("role", model.RoleAdmin)

	require.NoError(t, h.SetPayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPinsStudentsToOwnApplications(t *testing.T) {
	h, mock := newApplicationHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ?")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "form_id", "hall_id", "data_json", "attachments_json",
			"status", "payment_done", "score", "created_at",
		}))

	// Students cannot list other users' applications.
	req := httptest.NewRequest(http.MethodGet, "/v1/applications?user_id=99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// putJSON builds a PUT request context with the :id path param bound.
func putJSON(e *echo.Echo, path, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}
