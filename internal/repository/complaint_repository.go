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

// ComplaintRepo provides access to the 'complaints' table.  Filing
// is restricted to students; the hall is stamped from the user
// record at creation time, never taken from caller input.
type ComplaintRepo struct{ DB *sql.DB }

func NewComplaintRepo(db *sql.DB) *ComplaintRepo { return &ComplaintRepo{DB: db} }

const complaintColumns = "id, user_id, hall_id, title, body, attachments_json, status, reviewed_by, review_notes, created_at"

func scanComplaint(row interface{ Scan(dest ...any) error }) (*model.Complaint, error) {
	var (
		c          model.Complaint
		hallID     sql.NullInt64
		reviewedBy sql.NullInt64
		attachJSON string
	)
	if err := row.Scan(&c.ID, &c.UserID, &hallID, &c.Title, &c.Body, &attachJSON, &c.Status, &reviewedBy, &c.ReviewNotes, &c.CreatedAt); err != nil {
		return nil, err
	}
	if hallID.Valid {
		id := uint64(hallID.Int64)
		c.HallID = &id
	}
	if reviewedBy.Valid {
		id := uint64(reviewedBy.Int64)
		c.ReviewedBy = &id
	}
	if attachJSON != "" {
		if err := json.Unmarshal([]byte(attachJSON), &c.Attachments); err != nil {
			return nil, fmt.Errorf("decode complaint %d attachments: %w", c.ID, err)
		}
	}
	return &c, nil
}

// Create files a complaint on behalf of user.  ErrForbidden when
// the user's role is not student; ErrNotFound when the user does
// not exist.  The complaint's hall is copied from the user record.
func (r *ComplaintRepo) Create(ctx context.Context, user model.User, c *model.Complaint) error {
	if user.Role != model.RoleStudent {
		return ErrForbidden
	}
	c.UserID = user.ID
	c.HallID = user.HallID
	c.Status = model.ComplaintOpen
	if c.Attachments == nil {
		c.Attachments = []string{}
	}
	attach, err := json.Marshal(c.Attachments)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO complaints (user_id, hall_id, title, body, attachments_json, status, review_notes) VALUES (?,?,?,?,?,?,'')",
		c.UserID, c.HallID, c.Title, c.Body, string(attach), c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM complaints WHERE id=?", c.ID).Scan(&c.CreatedAt)
}

// List returns complaints in insertion order, filtered by user
// and/or hall when set.
func (r *ComplaintRepo) List(ctx context.Context, userID, hallID uint64) ([]*model.Complaint, error) {
	var (
		where []string
		args  []any
	)
	if userID != 0 {
		where = append(where, "user_id = ?")
		args = append(args, userID)
	}
	if hallID != 0 {
		where = append(where, "hall_id = ?")
		args = append(args, hallID)
	}
	q := "SELECT " + complaintColumns + " FROM complaints"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetStatus updates status and, when provided, the reviewer and
// notes.  ErrNotFound when the id does not exist.
func (r *ComplaintRepo) SetStatus(ctx context.Context, id uint64, status string, reviewedBy *uint64, notes string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE complaints SET status=?, reviewed_by=COALESCE(?, reviewed_by), review_notes=? WHERE id=?",
		status, reviewedBy, notes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM complaints WHERE id=?", id).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
