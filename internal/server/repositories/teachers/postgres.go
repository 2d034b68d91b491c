// Package teachers provides the PostgreSQL-backed teacher repository.
package teachers

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/google/uuid"
)

var mapping = crud.Mapping[models.Teacher]{
	Table:   "teachers",
	Columns: []string{"name", "email", "password", "date_of_birth", "course", "roles", "created_at", "updated_at"},
	OrderBy: "name",
	ID:      func(t *models.Teacher) *uuid.UUID { return &t.ID },
	Audit:   func(t *models.Teacher) *models.Audit { return &t.Audit },
	Values: func(t *models.Teacher) []any {
		return []any{t.Name, t.Email, t.Password, t.DateOfBirth, t.Course, t.Roles, t.CreatedAt, t.UpdatedAt}
	},
	Dest: func(t *models.Teacher) []any {
		return []any{&t.Name, &t.Email, &t.Password, &t.DateOfBirth, &t.Course, &t.Roles, &t.CreatedAt, &t.UpdatedAt}
	},
}

type PostgresRepository struct {
	*crud.PostgresRepository[models.Teacher]
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{crud.NewPostgresRepository(db, mapping)}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.ExistsBy(ctx, "email", email)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	return r.FindOneBy(ctx, "email", email)
}
