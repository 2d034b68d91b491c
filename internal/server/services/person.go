package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devnest/internal/server/validators"
	"github.com/google/uuid"
)

// PersonPatch carries the mutable account fields of an update. Nil fields
// are left untouched. ID, when present, must equal the id being updated.
type PersonPatch struct {
	ID       *uuid.UUID
	Name     *string
	Email    *string
	Password *string
}

func (p PersonPatch) mismatches(id uuid.UUID) bool {
	return p.ID != nil && *p.ID != id
}

func applyPersonPatch(ctx context.Context, person *models.Person, patch PersonPatch, unique validators.UniqueEmail, hasher *auth.Hasher) error {
	if patch.Email != nil && *patch.Email != person.Email {
		if err := unique.Validate(ctx, *patch.Email); err != nil {
			return err
		}
		person.Email = *patch.Email
	}
	if patch.Name != nil {
		person.Name = *patch.Name
	}
	if patch.Password != nil {
		hash, err := hashPassword(hasher, *patch.Password)
		if err != nil {
			return err
		}
		person.Password = hash
	}
	return nil
}

// hashPassword passes validation failures through unwrapped so they render
// as the client's fault.
func hashPassword(hasher *auth.Hasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return "", err
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// uniqueLogin checks an email against the kind's own table and the tables
// of the other account kinds.
func uniqueLogin(m repomanager.RepositoryManager, db dbx.DBTX, kind string) validators.UniqueEmail {
	st, tc, sf := m.Students(db), m.Teachers(db), m.Staff(db)
	switch kind {
	case "student":
		return validators.UniqueEmail{Kind: kind, Repo: st, Others: []validators.EmailChecker{tc, sf}}
	case "teacher":
		return validators.UniqueEmail{Kind: kind, Repo: tc, Others: []validators.EmailChecker{st, sf}}
	default:
		return validators.UniqueEmail{Kind: kind, Repo: sf, Others: []validators.EmailChecker{st, tc}}
	}
}
