// Package refreshtokens declares the repository contract for server-side
// refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/google/uuid"
)

// Repository issues, consumes and revokes refresh tokens.
type Repository interface {
	// Create stores a token for the given principal with an expiry of now+validity.
	Create(ctx context.Context, token *models.RefreshToken, validity time.Duration) error

	// Consume deletes the token and returns the row it removed, so a token
	// can be redeemed once. It returns common.ErrorNotFound when the token is
	// absent or was already consumed.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// DeleteBySubject revokes every token issued to the subject.
	DeleteBySubject(ctx context.Context, subjectID uuid.UUID) error
}
