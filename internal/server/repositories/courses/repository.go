package courses

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/google/uuid"
)

type Repository interface {
	crud.Repository[models.Course]
	// ExistsByName compares names case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)
	SearchByName(ctx context.Context, name string) ([]*models.Course, error)
	SetSyllabusKey(ctx context.Context, id uuid.UUID, key string) error
}
