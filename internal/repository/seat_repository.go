package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unihall/hall-allotment/internal/model"
)

// SeatRepo provides access to the 'seats' table.  Seats are created
// at hall-seeding time and never deleted; admins patch status and
// student assignment directly.
type SeatRepo struct{ DB *sql.DB }

func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{DB: db} }

const seatColumns = "id, hall_id, floor, room, bed, status, student_id, created_at, updated_at"

// SeatPatch carries the admin-settable seat fields.  Nil fields are
// left untouched; StudentID set to an empty string clears the
// assignment.
type SeatPatch struct {
	Status    *string
	StudentID *string
}

func scanSeat(row interface{ Scan(dest ...any) error }) (*model.Seat, error) {
	var (
		s         model.Seat
		studentID sql.NullString
	)
	if err := row.Scan(&s.ID, &s.HallID, &s.Floor, &s.Room, &s.Bed, &s.Status, &studentID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if studentID.Valid {
		s.StudentID = &studentID.String
	}
	return &s, nil
}

// GetByID fetches one seat.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	s, err := scanSeat(r.DB.QueryRowContext(ctx,
		"SELECT "+seatColumns+" FROM seats WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// List returns seats in address order, optionally restricted by
// hall and status.
func (r *SeatRepo) List(ctx context.Context, hallID uint64, status string) ([]*model.Seat, error) {
	var (
		where []string
		args  []any
	)
	if hallID != 0 {
		where = append(where, "hall_id = ?")
		args = append(args, hallID)
	}
	if status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	q := "SELECT " + seatColumns + " FROM seats"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY hall_id, floor, room, bed"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update shallow-merges the patch into the seat.  There is no
// cross-seat uniqueness check on the assigned student and no
// capacity check; seat assignment is a fully manual admin action.
func (r *SeatRepo) Update(ctx context.Context, id uint64, p SeatPatch) error {
	var (
		sets []string
		args []any
	)
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *p.Status)
	}
	if p.StudentID != nil {
		if *p.StudentID == "" {
			sets = append(sets, "student_id = NULL")
		} else {
			sets = append(sets, "student_id = ?")
			args = append(args, *p.StudentID)
		}
	}
	if len(sets) == 0 {
		return r.mustExist(ctx, id)
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE seats SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.mustExist(ctx, id)
	}
	return nil
}

// Assign marks a seat Occupied by the given student.
func (r *SeatRepo) Assign(ctx context.Context, id uint64, studentID string) error {
	status := model.SeatOccupied
	return r.Update(ctx, id, SeatPatch{Status: &status, StudentID: &studentID})
}

func (r *SeatRepo) mustExist(ctx context.Context, id uint64) error {
	var one int
	err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM seats WHERE id=?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
