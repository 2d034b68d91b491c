package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/config"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Authenticator checks a login and password and resolves account ids to
// their current principal.
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*auth.Principal, error)
	Resolve(ctx context.Context, id uuid.UUID) (*auth.Principal, error)
}

// AuthService verifies credentials and issues and rotates tokens.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	authenticator                Authenticator
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, a Authenticator, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		authenticator:                a,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Authenticate checks HTTP Basic style credentials.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*auth.Principal, error) {
	return s.authenticator.Authenticate(ctx, login, password)
}

// ParseAccessToken returns the principal carried by a bearer token.
func (s *AuthService) ParseAccessToken(token string) (*auth.Principal, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

// Login verifies credentials and, on success, returns a new TokenPair.
func (s *AuthService) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	p, err := s.authenticator.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	return s.generateTokenPair(ctx, p, s.db)
}

// Refresh redeems a refresh token and returns a fresh TokenPair. The token is
// consumed and its replacement stored in one transaction, so concurrent
// redemptions of the same token mint at most one pair. Unknown or already
// used tokens, and tokens whose account no longer exists, yield
// ErrInvalidToken; expired ones ErrRefreshTokenExpired.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.Expires.Before(time.Now()) {
			return common.ErrRefreshTokenExpired
		}

		// the account may have been deleted or had its role changed since
		// the token was issued
		p, err := s.authenticator.Resolve(ctx, token.SubjectID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error resolving token subject: %w", err)
		}

		pair, err = s.generateTokenPair(ctx, p, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, p *auth.Principal, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(*p, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	rt := &models.RefreshToken{Token: refresh, SubjectID: p.ID, Login: p.Login, Role: p.Role}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, rt, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
