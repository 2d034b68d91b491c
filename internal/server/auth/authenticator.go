package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

// Account is what a Provider knows about a login.
type Account struct {
	Principal
	PasswordHash string
}

// Provider looks an account up by login or by id. Both return
// common.ErrorNotFound when the account is unknown to it.
type Provider interface {
	Lookup(ctx context.Context, login string) (*Account, error)
	Resolve(ctx context.Context, id uuid.UUID) (*Principal, error)
}

// Authenticator checks credentials against its providers in order. The first
// provider that knows the login decides.
type Authenticator struct {
	hasher    *Hasher
	providers []Provider
	dummyHash string
}

func NewAuthenticator(hasher *Hasher, providers ...Provider) (*Authenticator, error) {
	// compared against when no provider knows the login, so both failure
	// paths pay for one bcrypt comparison
	dummy, err := hasher.Hash("devnest-unknown-account")
	if err != nil {
		return nil, err
	}
	return &Authenticator{hasher: hasher, providers: providers, dummyHash: dummy}, nil
}

// Authenticate returns the principal for login/password. Unknown logins and
// wrong passwords both yield common.ErrInvalidCredentials; lookup failures are
// returned wrapped.
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) (*Principal, error) {
	login = common.NormalizeEmail(login)

	for _, p := range a.providers {
		acc, err := p.Lookup(ctx, login)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error looking up account: %w", err)
		}

		if !a.hasher.Matches(acc.PasswordHash, password) {
			return nil, common.ErrInvalidCredentials
		}
		principal := acc.Principal
		return &principal, nil
	}

	a.hasher.Matches(a.dummyHash, password)
	return nil, common.ErrInvalidCredentials
}

// Resolve returns the current principal of the account with the given id,
// so a long-lived token picks up deletions and role changes. It returns
// common.ErrorNotFound when no provider knows the id.
func (a *Authenticator) Resolve(ctx context.Context, id uuid.UUID) (*Principal, error) {
	for _, p := range a.providers {
		principal, err := p.Resolve(ctx, id)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error resolving account: %w", err)
		}
		return principal, nil
	}
	return nil, common.ErrorNotFound
}
