package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unihall/hall-allotment/internal/model"
)

// HallRepo provides read access to the 'halls' reference data.
// Halls are seeded once and never mutated through the API.
type HallRepo struct{ DB *sql.DB }

func NewHallRepo(db *sql.DB) *HallRepo { return &HallRepo{DB: db} }

const hallColumns = "id, name, short_code, category, capacity, established_year, provost_name, provost_contact, image_url, local_image, fallback_image"

func scanHall(row interface{ Scan(dest ...any) error }) (*model.Hall, error) {
	var h model.Hall
	err := row.Scan(&h.ID, &h.Name, &h.ShortCode, &h.Category, &h.Capacity, &h.EstablishedYear,
		&h.ProvostName, &h.ProvostContact, &h.ImageURL, &h.LocalImage, &h.FallbackImage)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns all halls in insertion order.
func (r *HallRepo) List(ctx context.Context) ([]*model.Hall, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+hallColumns+" FROM halls ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Hall
	for rows.Next() {
		h, err := scanHall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetByID fetches one hall.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	h, err := scanHall(r.DB.QueryRowContext(ctx,
		"SELECT "+hallColumns+" FROM halls WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return h, err
}

// GetByShortCode fetches a hall by its short code, used when
// resolving the hall derived from a student-id prefix.
func (r *HallRepo) GetByShortCode(ctx context.Context, code string) (*model.Hall, error) {
	h, err := scanHall(r.DB.QueryRowContext(ctx,
		"SELECT "+hallColumns+" FROM halls WHERE short_code=? LIMIT 1", code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return h, err
}
