// Package crud implements the create/read/update/delete plumbing shared by
// every DevNest table once, parameterised over the entity type. A resource
// repository is a Mapping plus whatever derived queries it needs.
package crud

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the generic CRUD contract.
type Repository[T any] interface {
	// Create assigns an ID when the entity has none, stamps audit fields and
	// inserts the row. Unique violations are reported as common.ErrorAlreadyExists.
	Create(ctx context.Context, e *T) (*T, error)

	// FindByID returns common.ErrorNotFound when no row has this id.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Update rewrites every column of the row and refreshes UpdatedAt.
	Update(ctx context.Context, e *T) (*T, error)

	// DeleteByID returns common.ErrorNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ExistsBy, FindOneBy and FindAllBy back derived queries. column must
	// come from code, never from user input.
	ExistsBy(ctx context.Context, column string, value any) (bool, error)
	FindOneBy(ctx context.Context, column string, value any) (*T, error)
	FindAllBy(ctx context.Context, column string, value any) ([]*T, error)

	FindAll(ctx context.Context) ([]*T, error)

	// Match runs a query by example, see Example.
	Match(ctx context.Context, example Example) ([]*T, error)
}

// Example maps column names to substrings. Rows match when every non-empty
// value is contained, case-insensitively, in its column. Empty values are
// ignored; an empty example matches everything.
type Example map[string]string
