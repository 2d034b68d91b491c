package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/teachers"
	"github.com/google/uuid"
)

type TeacherService struct {
	Resource[models.Teacher]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
}

func NewTeacherService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher) *TeacherService {
	return &TeacherService{
		Resource: NewResource("teacher", db, func(db dbx.DBTX) crud.Repository[models.Teacher] {
			return m.Teachers(db)
		}).Revoking(m.RefreshTokens),
		db:          db,
		repomanager: m,
		hasher:      hasher,
	}
}

func (s *TeacherService) repo() teachers.Repository {
	return s.repomanager.Teachers(s.db)
}

// Create registers a teacher with role TEACHER. The email must be unused.
func (s *TeacherService) Create(ctx context.Context, t *models.Teacher) (*models.Teacher, error) {
	repo := s.repo()

	if err := uniqueLogin(s.repomanager, s.db, "teacher").Validate(ctx, t.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(s.hasher, t.Password)
	if err != nil {
		return nil, err
	}
	t.Password = hash
	t.Roles = common.RoleTeacher

	return s.create(ctx, repo, t)
}

// Update overwrites the name, email and password present in patch; a new
// email must be unused.
func (s *TeacherService) Update(ctx context.Context, id uuid.UUID, patch PersonPatch) (*models.Teacher, error) {
	if patch.mismatches(id) {
		return nil, s.notFound()
	}

	repo := s.repo()
	t, err := s.find(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	if err := applyPersonPatch(ctx, &t.Person, patch, uniqueLogin(s.repomanager, s.db, "teacher"), s.hasher); err != nil {
		return nil, err
	}

	return s.update(ctx, repo, t)
}
