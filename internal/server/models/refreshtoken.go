package models

import (
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

// RefreshToken is a server-stored, single-use token. SubjectID names the
// account it was issued to; the account is looked up again on every
// redemption.
type RefreshToken struct {
	Token     string
	SubjectID uuid.UUID
	Login     string
	Role      common.Role
	Expires   time.Time
	CreatedAt time.Time
}
