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

func newNotificationHandler(t *testing.T) (*NotificationHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNotificationHandler(repository.NewNotificationRepo(db)), mock
}

func notificationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "body", "hall_id", "created_at"})
}

func TestNotificationListUnfilteredForAdmin(t *testing.T) {
	h, mock := newNotificationHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, body, hall_id, created_at FROM notifications ORDER BY id")).
		WillReturnRows(notificationRows().
			AddRow(1, "Welcome", "Hall week starts Sunday", nil, time.Now()).
			AddRow(2, "Water outage", "Block B, Tuesday", 3, time.Now()))

	// Admins carry a hall claim; it must not narrow the board.
	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(1))
	c.Set("role", model.RoleAdmin)
	c.Set("hall_id", uint64(2))

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationListDefaultsToStudentHall(t *testing.T) {
	h, mock := newNotificationHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE hall_id = ? OR hall_id IS NULL")).
		WithArgs(2).
		WillReturnRows(notificationRows().
			AddRow(1, "Welcome", "Hall week starts Sunday", nil, time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(5))
	c.Set("role", model.RoleStudent)
	c.Set("hall_id", uint64(2))

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationListHonorsHallQuery(t *testing.T) {
	h, mock := newNotificationHandler(t)
	e := echo.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE hall_id = ? OR hall_id IS NULL")).
		WithArgs(4).
		WillReturnRows(notificationRows())

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications?hall_id=4", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(1))
	c.Set("role", model.RoleAdmin)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
