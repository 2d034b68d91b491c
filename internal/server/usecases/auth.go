package usecases

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/mappers"
	"github.com/dmitrijs2005/devnest/internal/server/services"
)

type AuthService interface {
	Authenticate(ctx context.Context, login, password string) (*auth.Principal, error)
	ParseAccessToken(token string) (*auth.Principal, error)
	Login(ctx context.Context, login, password string) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type Login struct {
	svc AuthService
}

func (u *Login) Execute(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	pair, err := u.svc.Login(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}
	r := mappers.TokensToResponse(pair)
	return &r, nil
}

type RefreshTokens struct {
	svc AuthService
}

func (u *RefreshTokens) Execute(ctx context.Context, req dto.RefreshRequest) (*dto.TokenResponse, error) {
	pair, err := u.svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	r := mappers.TokensToResponse(pair)
	return &r, nil
}

// Auth groups the token use cases with the credential checks the HTTP
// middleware needs.
type Auth struct {
	Credentials AuthService
	Login       *Login
	Refresh     *RefreshTokens
}

func NewAuth(svc AuthService) *Auth {
	return &Auth{
		Credentials: svc,
		Login:       &Login{svc: svc},
		Refresh:     &RefreshTokens{svc: svc},
	}
}
