// Package staff provides the PostgreSQL-backed repository of back-office
// accounts.
package staff

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/google/uuid"
)

var mapping = crud.Mapping[models.StaffUser]{
	Table:   "staff_users",
	Columns: []string{"name", "email", "password", "date_of_birth", "role", "created_at", "updated_at"},
	OrderBy: "email",
	ID:      func(u *models.StaffUser) *uuid.UUID { return &u.ID },
	Audit:   func(u *models.StaffUser) *models.Audit { return &u.Audit },
	Values: func(u *models.StaffUser) []any {
		return []any{u.Name, u.Email, u.Password, u.DateOfBirth, u.Role, u.CreatedAt, u.UpdatedAt}
	},
	Dest: func(u *models.StaffUser) []any {
		return []any{&u.Name, &u.Email, &u.Password, &u.DateOfBirth, &u.Role, &u.CreatedAt, &u.UpdatedAt}
	},
}

type PostgresRepository struct {
	*crud.PostgresRepository[models.StaffUser]
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{crud.NewPostgresRepository(db, mapping)}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.ExistsBy(ctx, "email", email)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return r.FindOneBy(ctx, "email", email)
}
