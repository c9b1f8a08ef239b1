package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unihall/hall-allotment/internal/model"
)

// RenewalRepo provides access to the 'renewals' table.
type RenewalRepo struct{ DB *sql.DB }

func NewRenewalRepo(db *sql.DB) *RenewalRepo { return &RenewalRepo{DB: db} }

// Create appends a renewal request for the user.  The data layer
// does not enforce one outstanding request per student.
func (r *RenewalRepo) Create(ctx context.Context, userID uint64) (*model.Renewal, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO renewals (user_id, status) VALUES (?,?)",
		userID, model.RenewalRequested)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	var ren model.Renewal
	err = r.DB.QueryRowContext(ctx,
		"SELECT id, user_id, status, created_at FROM renewals WHERE id=?", uint64(id)).
		Scan(&ren.ID, &ren.UserID, &ren.Status, &ren.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ren, nil
}

// List returns all renewals in insertion order.  hallID 0 is the
// base path with no hall filtering; a non-zero hallID joins through
// users so admins can scope the view to their hall.
func (r *RenewalRepo) List(ctx context.Context, hallID uint64) ([]*model.Renewal, error) {
	q := "SELECT r.id, r.user_id, r.status, r.created_at FROM renewals r"
	var args []any
	if hallID != 0 {
		q += " JOIN users u ON u.id = r.user_id WHERE u.hall_id = ?"
		args = append(args, hallID)
	}
	q += " ORDER BY r.id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Renewal
	for rows.Next() {
		var ren model.Renewal
		if err := rows.Scan(&ren.ID, &ren.UserID, &ren.Status, &ren.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &ren)
	}
	return out, rows.Err()
}

// SetStatus overwrites the status.  ErrNotFound when the id does
// not exist.
func (r *RenewalRepo) SetStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE renewals SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM renewals WHERE id=?", id).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
