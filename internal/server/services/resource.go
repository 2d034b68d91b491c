// Package services contains DevNest's business logic: existence and
// uniqueness checks, password hashing, default role assignment, token
// issuing and syllabus storage. Services obtain repositories from a
// repomanager.RepositoryManager bound to the pool or to a transaction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/devnest/internal/server/validators"
	"github.com/google/uuid"
)

// Resource is the retrieval and deletion logic shared by every resource
// service. Kind names the resource in error messages.
type Resource[T any] struct {
	kind   string
	db     *sql.DB
	repo   func(db dbx.DBTX) crud.Repository[T]
	tokens func(db dbx.DBTX) refreshtokens.Repository
}

func NewResource[T any](kind string, db *sql.DB, repo func(db dbx.DBTX) crud.Repository[T]) Resource[T] {
	return Resource[T]{kind: kind, db: db, repo: repo}
}

// Revoking makes Delete also revoke the refresh tokens issued to the deleted
// account, in the same transaction.
func (r Resource[T]) Revoking(tokens func(db dbx.DBTX) refreshtokens.Repository) Resource[T] {
	r.tokens = tokens
	return r
}

func (r Resource[T]) notFound() error {
	return fmt.Errorf("%s %w", r.kind, common.ErrorNotFound)
}

// Get fetches by id directly.
func (r Resource[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.find(ctx, r.repo(r.db), id)
}

// GetChecked runs the existence check before fetching.
func (r Resource[T]) GetChecked(ctx context.Context, id uuid.UUID) (*T, error) {
	repo := r.repo(r.db)
	if err := (validators.Existence{Kind: r.kind, Repo: repo}).Validate(ctx, id); err != nil {
		return nil, err
	}
	return r.find(ctx, repo, id)
}

func (r Resource[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := (validators.Existence{Kind: r.kind, Repo: r.repo(r.db)}).Validate(ctx, id); err != nil {
		return err
	}
	if r.tokens == nil {
		return r.delete(ctx, r.db, id)
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.delete(ctx, tx, id); err != nil {
			return err
		}
		if err := r.tokens(tx).DeleteBySubject(ctx, id); err != nil {
			return fmt.Errorf("error revoking %s tokens: %w", r.kind, err)
		}
		return nil
	})
}

func (r Resource[T]) delete(ctx context.Context, db dbx.DBTX, id uuid.UUID) error {
	if err := r.repo(db).DeleteByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return r.notFound()
		}
		return fmt.Errorf("error deleting %s: %w", r.kind, err)
	}
	return nil
}

func (r Resource[T]) List(ctx context.Context) ([]*T, error) {
	items, err := r.repo(r.db).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", r.kind, err)
	}
	return items, nil
}

func (r Resource[T]) find(ctx context.Context, repo crud.Repository[T], id uuid.UUID) (*T, error) {
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, r.notFound()
		}
		return nil, fmt.Errorf("error fetching %s: %w", r.kind, err)
	}
	return e, nil
}

// create persists e, keeping a conflict reported by the database
// recognisable for races the up-front checks cannot see.
func (r Resource[T]) create(ctx context.Context, repo crud.Repository[T], e *T) (*T, error) {
	out, err := repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("%s %w", r.kind, common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error creating %s: %w", r.kind, err)
	}
	return out, nil
}

func (r Resource[T]) update(ctx context.Context, repo crud.Repository[T], e *T) (*T, error) {
	out, err := repo.Update(ctx, e)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, r.notFound()
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, fmt.Errorf("%s %w", r.kind, common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error updating %s: %w", r.kind, err)
	}
	return out, nil
}
