package staff

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
)

type Repository interface {
	crud.Repository[models.StaffUser]
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.StaffUser, error)
}
