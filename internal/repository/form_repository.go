package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unihall/hall-allotment/internal/model"
)

// FormRepo provides access to the 'forms' table.  Field schemas are
// stored as a JSON column; ordering inside the schema array is the
// display order.
type FormRepo struct{ DB *sql.DB }

func NewFormRepo(db *sql.DB) *FormRepo { return &FormRepo{DB: db} }

const formColumns = "id, name, active, hall_id, schema_json, created_at"

func (r *FormRepo) scanRow(row interface {
	Scan(dest ...any) error
}) (*model.FormDefinition, error) {
	var (
		f          model.FormDefinition
		hallID     sql.NullInt64
		schemaJSON string
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Active, &hallID, &schemaJSON, &f.CreatedAt); err != nil {
		return nil, err
	}
	if hallID.Valid {
		id := uint64(hallID.Int64)
		f.HallID = &id
	}
	if err := json.Unmarshal([]byte(schemaJSON), &f.Schema); err != nil {
		return nil, fmt.Errorf("decode form %d schema: %w", f.ID, err)
	}
	return &f, nil
}

// Create inserts a new definition.  New forms start inactive.
func (r *FormRepo) Create(ctx context.Context, f *model.FormDefinition) error {
	schema, err := json.Marshal(f.Schema)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO forms (name, active, hall_id, schema_json) VALUES (?,?,?,?)",
		f.Name, false, f.HallID, string(schema))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	f.Active = false
	fresh, err := r.GetByID(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *fresh
	return nil
}

// Replace overwrites name, scope and schema of an existing
// definition.  The previous field list is discarded; no version
// history is kept.
func (r *FormRepo) Replace(ctx context.Context, f *model.FormDefinition) error {
	schema, err := json.Marshal(f.Schema)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE forms SET name=?, hall_id=?, schema_json=? WHERE id=?",
		f.Name, f.HallID, string(schema), f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if !r.exists(ctx, f.ID) {
			return ErrNotFound
		}
	}
	return nil
}

// GetByID fetches one definition.
func (r *FormRepo) GetByID(ctx context.Context, id uint64) (*model.FormDefinition, error) {
	f, err := r.scanRow(r.DB.QueryRowContext(ctx,
		"SELECT "+formColumns+" FROM forms WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return f, err
}

// List returns definitions in insertion order, optionally filtered
// to one hall scope.  hallID nil with filter=true selects the global
// scope.
func (r *FormRepo) List(ctx context.Context, filterScope bool, hallID *uint64) ([]*model.FormDefinition, error) {
	q := "SELECT " + formColumns + " FROM forms"
	var args []any
	if filterScope {
		if hallID == nil {
			q += " WHERE hall_id IS NULL"
		} else {
			q += " WHERE hall_id = ?"
			args = append(args, *hallID)
		}
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FormDefinition
	for rows.Next() {
		f, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetActive returns the active definition for a hall, falling back
// to the global active form when the hall has none.  ErrNotFound
// when neither exists.
func (r *FormRepo) GetActive(ctx context.Context, hallID *uint64) (*model.FormDefinition, error) {
	if hallID != nil {
		f, err := r.scanRow(r.DB.QueryRowContext(ctx,
			"SELECT "+formColumns+" FROM forms WHERE active=1 AND hall_id=? LIMIT 1", *hallID))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}
	f, err := r.scanRow(r.DB.QueryRowContext(ctx,
		"SELECT "+formColumns+" FROM forms WHERE active=1 AND hall_id IS NULL LIMIT 1"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return f, err
}

// SetActive deactivates every definition in the given scope, then
// activates the named definition and rebinds its scope, all in one
// transaction.  Activating a form can therefore move it between
// halls; scope and activity are managed together.
func (r *FormRepo) SetActive(ctx context.Context, id uint64, hallID *uint64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if hallID == nil {
		_, err = tx.ExecContext(ctx, "UPDATE forms SET active=0 WHERE hall_id IS NULL")
	} else {
		_, err = tx.ExecContext(ctx, "UPDATE forms SET active=0 WHERE hall_id = ?", *hallID)
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE forms SET active=1, hall_id=? WHERE id=?", hallID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM forms WHERE id=?", id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
	}
	return tx.Commit()
}

func (r *FormRepo) exists(ctx context.Context, id uint64) bool {
	var one int
	return r.DB.QueryRowContext(ctx, "SELECT 1 FROM forms WHERE id=?", id).Scan(&one) == nil
}
