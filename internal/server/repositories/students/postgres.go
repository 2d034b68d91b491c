// Package students provides the PostgreSQL-backed student repository.
package students

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/google/uuid"
)

var mapping = crud.Mapping[models.Student]{
	Table:   "students",
	Columns: []string{"name", "email", "password", "date_of_birth", "course", "roles", "created_at", "updated_at"},
	OrderBy: "name",
	ID:      func(s *models.Student) *uuid.UUID { return &s.ID },
	Audit:   func(s *models.Student) *models.Audit { return &s.Audit },
	Values: func(s *models.Student) []any {
		return []any{s.Name, s.Email, s.Password, s.DateOfBirth, s.Course, s.Roles, s.CreatedAt, s.UpdatedAt}
	},
	Dest: func(s *models.Student) []any {
		return []any{&s.Name, &s.Email, &s.Password, &s.DateOfBirth, &s.Course, &s.Roles, &s.CreatedAt, &s.UpdatedAt}
	},
}

type PostgresRepository struct {
	*crud.PostgresRepository[models.Student]
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{crud.NewPostgresRepository(db, mapping)}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.ExistsBy(ctx, "email", email)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.FindOneBy(ctx, "email", email)
}

func (r *PostgresRepository) Search(ctx context.Context, name, course string) ([]*models.Student, error) {
	return r.Match(ctx, crud.Example{"name": name, "course": course})
}
