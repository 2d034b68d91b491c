package students

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
)

type Repository interface {
	crud.Repository[models.Student]
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	// Search matches name and course case-insensitively; empty filters are ignored.
	Search(ctx context.Context, name, course string) ([]*models.Student, error)
}
