// Package usecases holds one type per operation. A use case maps the
// request DTO to models, makes a single service call and maps the result
// back.
package usecases

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/google/uuid"
)

// GetByID fetches one record and maps it to its response DTO.
type GetByID[T, R any] struct {
	get   func(ctx context.Context, id uuid.UUID) (*T, error)
	toDTO func(*T) R
}

func NewGetByID[T, R any](get func(ctx context.Context, id uuid.UUID) (*T, error), toDTO func(*T) R) *GetByID[T, R] {
	return &GetByID[T, R]{get: get, toDTO: toDTO}
}

func (u *GetByID[T, R]) Execute(ctx context.Context, id uuid.UUID) (*R, error) {
	e, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	r := u.toDTO(e)
	return &r, nil
}

// DeleteByID deletes one record and reports success with a message.
type DeleteByID struct {
	kind string
	del  func(ctx context.Context, id uuid.UUID) error
}

func NewDeleteByID(kind string, del func(ctx context.Context, id uuid.UUID) error) *DeleteByID {
	return &DeleteByID{kind: kind, del: del}
}

func (u *DeleteByID) Execute(ctx context.Context, id uuid.UUID) (*dto.Message, error) {
	if err := u.del(ctx, id); err != nil {
		return nil, err
	}
	return &dto.Message{Message: u.kind + " deleted successfully"}, nil
}
