package repository

import (
	"context"
	"database/sql"

	"github.com/unihall/hall-allotment/internal/model"
)

// NotificationRepo provides access to the 'notifications' table.
// Notices are append-only; there is no update or delete.
type NotificationRepo struct{ DB *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{DB: db} }

// Create appends a notice.  hallID nil publishes to every hall.
func (r *NotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO notifications (title, body, hall_id) VALUES (?,?,?)",
		n.Title, n.Body, n.HallID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM notifications WHERE id=?", n.ID).Scan(&n.CreatedAt)
}

// List returns notices in insertion order.  With a hall filter,
// global (NULL-hall) notices are included alongside the hall's own.
func (r *NotificationRepo) List(ctx context.Context, hallID uint64) ([]*model.Notification, error) {
	q := "SELECT id, title, body, hall_id, created_at FROM notifications"
	var args []any
	if hallID != 0 {
		q += " WHERE hall_id = ? OR hall_id IS NULL"
		args = append(args, hallID)
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Notification
	for rows.Next() {
		var (
			n      model.Notification
			hallID sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &hallID, &n.CreatedAt); err != nil {
			return nil, err
		}
		if hallID.Valid {
			id := uint64(hallID.Int64)
			n.HallID = &id
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}
