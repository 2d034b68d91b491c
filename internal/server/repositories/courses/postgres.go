// Package courses provides the PostgreSQL-backed course repository.
package courses

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/google/uuid"
)

var mapping = crud.Mapping[models.Course]{
	Table:   "courses",
	Columns: []string{"name", "workload", "description", "syllabus_key", "created_at", "updated_at"},
	OrderBy: "name",
	ID:      func(c *models.Course) *uuid.UUID { return &c.ID },
	Audit:   func(c *models.Course) *models.Audit { return &c.Audit },
	Values: func(c *models.Course) []any {
		return []any{c.Name, c.Workload, c.Description, c.SyllabusKey, c.CreatedAt, c.UpdatedAt}
	},
	Dest: func(c *models.Course) []any {
		return []any{&c.Name, &c.Workload, &c.Description, &c.SyllabusKey, &c.CreatedAt, &c.UpdatedAt}
	},
}

type PostgresRepository struct {
	*crud.PostgresRepository[models.Course]
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{PostgresRepository: crud.NewPostgresRepository(db, mapping), db: db}
}

func (r *PostgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM courses WHERE lower(name) = lower($1))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) SearchByName(ctx context.Context, name string) ([]*models.Course, error) {
	return r.Match(ctx, crud.Example{"name": name})
}

// SetSyllabusKey records the object key of an uploaded syllabus.
func (r *PostgresRepository) SetSyllabusKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE courses SET syllabus_key = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
