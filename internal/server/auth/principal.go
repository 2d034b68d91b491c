// Package auth holds DevNest's authentication primitives: the Principal of a
// request, bcrypt password hashing, JWT access tokens and the authenticator
// that checks a login against the per-resource account providers.
package auth

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

// Principal is the authenticated caller.
type Principal struct {
	ID    uuid.UUID
	Login string
	Name  string
	Role  common.Role
}

// HasAnyRole reports whether p holds one of roles. ADMIN holds every role.
func (p Principal) HasAnyRole(roles ...common.Role) bool {
	if p.Role == common.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
