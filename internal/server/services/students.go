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
	"github.com/dmitrijs2005/devnest/internal/server/repositories/students"
	"github.com/google/uuid"
)

type StudentService struct {
	Resource[models.Student]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
}

func NewStudentService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher) *StudentService {
	return &StudentService{
		Resource: NewResource("student", db, func(db dbx.DBTX) crud.Repository[models.Student] {
			return m.Students(db)
		}).Revoking(m.RefreshTokens),
		db:          db,
		repomanager: m,
		hasher:      hasher,
	}
}

func (s *StudentService) repo() students.Repository {
	return s.repomanager.Students(s.db)
}

// Enroll creates a student with role STUDENT. The email must be unused.
func (s *StudentService) Enroll(ctx context.Context, st *models.Student) (*models.Student, error) {
	repo := s.repo()

	if err := uniqueLogin(s.repomanager, s.db, "student").Validate(ctx, st.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(s.hasher, st.Password)
	if err != nil {
		return nil, err
	}
	st.Password = hash
	st.Roles = common.RoleStudent

	return s.create(ctx, repo, st)
}

// Update overwrites the name, email and password present in patch.
func (s *StudentService) Update(ctx context.Context, id uuid.UUID, patch PersonPatch) (*models.Student, error) {
	if patch.mismatches(id) {
		return nil, s.notFound()
	}

	repo := s.repo()
	st, err := s.find(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	if err := applyPersonPatch(ctx, &st.Person, patch, uniqueLogin(s.repomanager, s.db, "student"), s.hasher); err != nil {
		return nil, err
	}

	return s.update(ctx, repo, st)
}

// Search returns students whose name and course contain the given
// fragments, ignoring case. Empty fragments match everything.
func (s *StudentService) Search(ctx context.Context, name, course string) ([]*models.Student, error) {
	list, err := s.repo().Search(ctx, name, course)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return list, nil
}
