package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihall/hall-allotment/internal/model"
)

func applicationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "form_id", "hall_id", "data_json", "attachments_json",
		"status", "payment_done", "score", "created_at",
	})
}

func TestApplicationCreateStampsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO applications")).
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := NewApplicationRepo(db)
	app := &model.Application{
		UserID: 5,
		FormID: 1,
		Data:   map[string]model.FieldValue{"name": model.TextValue("Rahim")},
		Status: model.StatusSubmitted,
		Score:  30,
	}
	require.NoError(t, repo.Create(context.Background(), app))
	assert.Equal(t, uint64(11), app.ID)
	assert.NotNil(t, app.Attachments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationWaitlistFiltersByHall(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ? AND payment_done = 0 AND hall_id = ? ORDER BY id")).
		WithArgs(model.StatusApproved, 2).
		WillReturnRows(applicationRows().
			AddRow(3, 5, 1, 2, `{"name":"Rahim"}`, `{}`, model.StatusApproved, false, 40, now).
			AddRow(8, 9, 1, 2, `{"name":"Karim"}`, `{}`, model.StatusApproved, false, 55, now))

	repo := NewApplicationRepo(db)
	apps, err := repo.Waitlist(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, uint64(3), apps[0].ID)
	assert.Equal(t, uint64(8), apps[1].ID)
	for _, a := range apps {
		assert.Equal(t, model.StatusApproved, a.Status)
		assert.False(t, a.PaymentDone)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationSetStatusNoChangeIsNotMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// MySQL reports zero affected rows when the new value equals the
	// old one, so the repo re-checks existence before reporting 404.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET status=? WHERE id=?")).
		WithArgs(model.StatusApproved, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM applications WHERE id=?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	repo := NewApplicationRepo(db)
	assert.NoError(t, repo.SetStatus(context.Background(), 3, model.StatusApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationSetStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET status=? WHERE id=?")).
		WithArgs(model.StatusRejected, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM applications WHERE id=?")).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	repo := NewApplicationRepo(db)
	err = repo.SetStatus(context.Background(), 404, model.StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationSetPaymentLeavesStatusAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET payment_done=? WHERE id=?")).
		WithArgs(true, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewApplicationRepo(db)
	assert.NoError(t, repo.SetPayment(context.Background(), 3, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationListIntersectsFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ? AND hall_id = ? ORDER BY id")).
		WithArgs(5, 2).
		WillReturnRows(applicationRows().
			AddRow(3, 5, 1, 2, `{"name":"Rahim"}`, `{}`, model.StatusSubmitted, false, 40, time.Now()))

	repo := NewApplicationRepo(db)
	apps, err := repo.List(context.Background(), ApplicationFilter{UserID: 5, HallID: 2})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, uint64(5), apps[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
