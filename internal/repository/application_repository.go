package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/unihall/hall-allotment/internal/model"
)

// ApplicationRepo provides access to the 'applications' table.
// Submitted data and attachments live in JSON columns keyed by
// field id.  The waitlist is a derived query over this table and is
// never materialized.
type ApplicationRepo struct{ DB *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

const applicationColumns = "id, user_id, form_id, hall_id, data_json, attachments_json, status, payment_done, score, created_at"

// ApplicationFilter narrows List results.  Zero fields are ignored;
// set fields intersect.
type ApplicationFilter struct {
	UserID uint64
	HallID uint64
	FormID uint64
}

func scanApplication(row interface{ Scan(dest ...any) error }) (*model.Application, error) {
	var (
		a          model.Application
		hallID     sql.NullInt64
		dataJSON   string
		attachJSON string
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.FormID, &hallID, &dataJSON, &attachJSON, &a.Status, &a.PaymentDone, &a.Score, &a.CreatedAt); err != nil {
		return nil, err
	}
	if hallID.Valid {
		id := uint64(hallID.Int64)
		a.HallID = &id
	}
	if err := json.Unmarshal([]byte(dataJSON), &a.Data); err != nil {
		return nil, fmt.Errorf("decode application %d data: %w", a.ID, err)
	}
	if attachJSON != "" {
		if err := json.Unmarshal([]byte(attachJSON), &a.Attachments); err != nil {
			return nil, fmt.Errorf("decode application %d attachments: %w", a.ID, err)
		}
	}
	return &a, nil
}

// Create inserts a new submission.  Status, payment flag, hall and
// score must already be stamped by the caller.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	data, err := json.Marshal(a.Data)
	if err != nil {
		return err
	}
	if a.Attachments == nil {
		a.Attachments = map[string]string{}
	}
	attach, err := json.Marshal(a.Attachments)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO applications (user_id, form_id, hall_id, data_json, attachments_json, status, payment_done, score) VALUES (?,?,?,?,?,?,?,?)",
		a.UserID, a.FormID, a.HallID, string(data), string(attach), a.Status, a.PaymentDone, a.Score)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches one application.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*model.Application, error) {
	a, err := scanApplication(r.DB.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// List returns applications matching the filter in insertion order.
// No pagination.
func (r *ApplicationRepo) List(ctx context.Context, f ApplicationFilter) ([]*model.Application, error) {
	var (
		where []string
		args  []any
	)
	if f.UserID != 0 {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.HallID != 0 {
		where = append(where, "hall_id = ?")
		args = append(args, f.HallID)
	}
	if f.FormID != 0 {
		where = append(where, "form_id = ?")
		args = append(args, f.FormID)
	}
	q := "SELECT " + applicationColumns + " FROM applications"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"
	return r.queryMany(ctx, q, args...)
}

// Waitlist returns applications approved but not yet paid,
// optionally restricted to one hall.  Always recomputed from the
// current application state; order is store insertion order with no
// position guarantee.
func (r *ApplicationRepo) Waitlist(ctx context.Context, hallID uint64) ([]*model.Application, error) {
	q := "SELECT " + applicationColumns + " FROM applications WHERE status = ? AND payment_done = 0"
	args := []any{model.StatusApproved}
	if hallID != 0 {
		q += " AND hall_id = ?"
		args = append(args, hallID)
	}
	q += " ORDER BY id"
	return r.queryMany(ctx, q, args...)
}

// SetStatus overwrites the status column unconditionally.  Payment
// is untouched.  ErrNotFound when the id does not exist; writing the
// current value back is not an error.
func (r *ApplicationRepo) SetStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE applications SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.mustExist(ctx, id)
	}
	return nil
}

// SetPayment overwrites the payment flag unconditionally,
// independent of status.
func (r *ApplicationRepo) SetPayment(ctx context.Context, id uint64, paid bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE applications SET payment_done=? WHERE id=?", paid, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.mustExist(ctx, id)
	}
	return nil
}

// mustExist distinguishes a no-change update from a missing row:
// MySQL reports zero affected rows for both.
func (r *ApplicationRepo) mustExist(ctx context.Context, id uint64) error {
	var one int
	err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM applications WHERE id=?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *ApplicationRepo) queryMany(ctx context.Context, q string, args ...any) ([]*model.Application, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
