// Package validators wraps the single existence and uniqueness checks the
// services run before touching a record.
package validators

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

type IDChecker interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type EmailChecker interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type NameChecker interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// Existence fails with common.ErrorNotFound when no Kind record has the id.
type Existence struct {
	Kind string
	Repo IDChecker
}

func (v Existence) Validate(ctx context.Context, id uuid.UUID) error {
	ok, err := v.Repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %w", v.Kind, common.ErrorNotFound)
	}
	return nil
}

// UniqueEmail fails with common.ErrorAlreadyExists when a Kind record already
// uses the email. Logins are resolved across every account table, so Others
// lists the tables of the other account kinds; a match there is a conflict
// too.
type UniqueEmail struct {
	Kind   string
	Repo   EmailChecker
	Others []EmailChecker
}

func (v UniqueEmail) Validate(ctx context.Context, email string) error {
	taken, err := v.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%s with email %s %w", v.Kind, email, common.ErrorAlreadyExists)
	}
	for _, o := range v.Others {
		taken, err := o.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("account with email %s %w", email, common.ErrorAlreadyExists)
		}
	}
	return nil
}

// UniqueCourseName fails with common.ErrorAlreadyExists when a course already
// has the name, ignoring case.
type UniqueCourseName struct {
	Repo NameChecker
}

func (v UniqueCourseName) Validate(ctx context.Context, name string) error {
	taken, err := v.Repo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("course %q %w", name, common.ErrorAlreadyExists)
	}
	return nil
}
