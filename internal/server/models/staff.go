package models

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

// StaffUser is a back-office account (ADMIN or USER) provisioned through the
// admin CLI.
type StaffUser struct {
	ID uuid.UUID
	Person
	Role common.Role
	Audit
}
