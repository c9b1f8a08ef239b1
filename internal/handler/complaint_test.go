package handler

import (
	"net/http"
	"net/http/httptest"
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

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "student_id", "hall_id",
		"is_active", "created_at", "updated_at",
	})
}

func newComplaintHandler(t *testing.T) (*ComplaintHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewComplaintHandler(repository.NewComplaintRepo(db), repository.NewUserRepo(db)), mock
}

func TestComplaintCreateForbiddenForStaff(t *testing.T) {
	h, mock := newComplaintHandler(t)
	e := echo.New()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id=?")).
		WithArgs(7).
		WillReturnRows(userRows().
			AddRow(7, "Hall Staff", "staff@nstu.edu.bd", "x", model.RoleStaff, nil, 2, true, now, now))

	c, rec := postJSON(e, "/v1/complaints", `{"title":"Broken fan","body":"Room 101"}`)
	c.Set("user_id", uint64(7))
	c.Set("role", model.RoleStaff)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintCreateStampsHallFromUser(t *testing.T) {
	h, mock := newComplaintHandler(t)
	e := echo.New()

	now := time.Now()
	sid := "MUH2025-0001"
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id=?")).
		WithArgs(5).
		WillReturnRows(userRows().
			AddRow(5, "Rahim", "rahim@student.nstu.edu.bd", "x", model.RoleStudent, sid, 2, true, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO complaints")).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT created_at FROM complaints WHERE id=?")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	c, rec := postJSON(e, "/v1/complaints", `{"title":"Broken fan","body":"Room 101"}`)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hall_id":2`)
	assert.Contains(t, rec.Body.String(), `"status":"Open"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintCreateRequiresTitle(t *testing.T) {
	h, _ := newComplaintHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/v1/complaints", `{"title":"  ","body":"x"}`)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplaintListPinsStudentsToOwnComplaints(t *testing.T) {
	h, mock := newComplaintHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ?")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "hall_id", "title", "body", "attachments_json",
			"status", "reviewed_by", "review_notes", "created_at",
		}).AddRow(1, 5, 2, "Broken fan", "Room 101", `[]`, model.ComplaintOpen, nil, "", time.Now()))

	// The user_id query is ignored for students.
	req := httptest.NewRequest(http.MethodGet, "/v1/complaints?user_id=99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
