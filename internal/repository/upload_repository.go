package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/unihall/hall-allotment/internal/model"
)

// UploadRepo provides access to the 'uploads' table holding exam
// controller documents (result sheets and seat plans).
type UploadRepo struct{ DB *sql.DB }

func NewUploadRepo(db *sql.DB) *UploadRepo { return &UploadRepo{DB: db} }

// Create stores an upload with its parsed rows.
func (r *UploadRepo) Create(ctx context.Context, u *model.Upload) error {
	if u.Rows == nil {
		u.Rows = [][]string{}
	}
	rowsJSON, err := json.Marshal(u.Rows)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO uploads (kind, hall_id, name, content, rows_json) VALUES (?,?,?,?,?)",
		u.Kind, u.HallID, u.Name, u.Content, string(rowsJSON))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM uploads WHERE id=?", u.ID).Scan(&u.CreatedAt)
}

// List returns uploads of one kind in insertion order, optionally
// restricted to a hall.
func (r *UploadRepo) List(ctx context.Context, kind string, hallID uint64) ([]*model.Upload, error) {
	q := "SELECT id, kind, hall_id, name, content, rows_json, created_at FROM uploads WHERE kind = ?"
	args := []any{kind}
	if hallID != 0 {
		q += " AND hall_id = ?"
		args = append(args, hallID)
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Upload
	for rows.Next() {
		var (
			u        model.Upload
			rowsJSON string
		)
		if err := rows.Scan(&u.ID, &u.Kind, &u.HallID, &u.Name, &u.Content, &rowsJSON, &u.CreatedAt); err != nil {
			return nil, err
		}
		if rowsJSON != "" {
			if err := json.Unmarshal([]byte(rowsJSON), &u.Rows); err != nil {
				return nil, fmt.Errorf("decode upload %d rows: %w", u.ID, err)
			}
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
