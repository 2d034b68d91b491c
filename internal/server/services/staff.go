package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
)

// StaffService manages back-office accounts. It is driven by the admin CLI.
type StaffService struct {
	Resource[models.StaffUser]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
}

func NewStaffService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher) *StaffService {
	return &StaffService{
		Resource: NewResource("staff user", db, func(db dbx.DBTX) crud.Repository[models.StaffUser] {
			return m.Staff(db)
		}).Revoking(m.RefreshTokens),
		db:          db,
		repomanager: m,
		hasher:      hasher,
	}
}

// Create stores a staff account. Only ADMIN and USER are staff roles.
func (s *StaffService) Create(ctx context.Context, u *models.StaffUser) (*models.StaffUser, error) {
	if u.Role != common.RoleAdmin && u.Role != common.RoleUser {
		return nil, fmt.Errorf("role %q is not a staff role: %w", u.Role, common.ErrorValidation)
	}
	u.Email = common.NormalizeEmail(u.Email)

	repo := s.repomanager.Staff(s.db)
	if err := uniqueLogin(s.repomanager, s.db, "staff user").Validate(ctx, u.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(s.hasher, u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	return s.create(ctx, repo, u)
}
