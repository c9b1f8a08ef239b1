package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/utils"
)

// UserRepo provides access to the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,password_hash,role,student_id,hall_id,is_active,created_at,updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var (
		u         model.User
		studentID sql.NullString
		hallID    sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &studentID, &hallID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if studentID.Valid {
		u.StudentID = &studentID.String
	}
	if hallID.Valid {
		id := uint64(hallID.Int64)
		u.HallID = &id
	}
	return u, nil
}

// Create inserts a user and returns its id.  The email is
// normalized to lower case; a duplicate maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u model.User, password string, cost int) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, student_id, hall_id) VALUES (?,?,?,?,?,?)",
		u.Name, email, hash, u.Role, u.StudentID, u.HallID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// UpdateHall moves a user to another hall.  Zero affected rows can
// mean the user already lives there, so the row is re-checked before
// reporting ErrNotFound.
func (r *UserRepo) UpdateHall(ctx context.Context, userID, hallID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET hall_id=? WHERE id=?", hallID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=?", userID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
