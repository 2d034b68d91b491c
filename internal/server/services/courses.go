package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	sc "github.com/dmitrijs2005/devnest/internal/server/config"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/courses"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devnest/internal/server/validators"
	"github.com/google/uuid"
)

// CoursePatch carries course fields to change. Nil fields are left
// untouched; a full replacement sets all three.
type CoursePatch struct {
	Name        *string
	Workload    *int
	Description *string
}

type CourseService struct {
	Resource[models.Course]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewCourseService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *CourseService {
	return &CourseService{
		Resource: NewResource("course", db, func(db dbx.DBTX) crud.Repository[models.Course] {
			return m.Courses(db)
		}),
		db:          db,
		repomanager: m,
		config:      config,
	}
}

func (s *CourseService) repo() courses.Repository {
	return s.repomanager.Courses(s.db)
}

// Register creates a course. Names are unique ignoring case.
func (s *CourseService) Register(ctx context.Context, c *models.Course) (*models.Course, error) {
	repo := s.repo()

	if err := (validators.UniqueCourseName{Repo: repo}).Validate(ctx, c.Name); err != nil {
		return nil, err
	}
	c.SyllabusKey = ""

	return s.create(ctx, repo, c)
}

// Replace overwrites name, workload and description.
func (s *CourseService) Replace(ctx context.Context, id uuid.UUID, name string, workload int, description string) (*models.Course, error) {
	return s.Patch(ctx, id, CoursePatch{Name: &name, Workload: &workload, Description: &description})
}

func (s *CourseService) Patch(ctx context.Context, id uuid.UUID, patch CoursePatch) (*models.Course, error) {
	repo := s.repo()

	c, err := s.find(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if !strings.EqualFold(*patch.Name, c.Name) {
			if err := (validators.UniqueCourseName{Repo: repo}).Validate(ctx, *patch.Name); err != nil {
				return nil, err
			}
		}
		c.Name = *patch.Name
	}
	if patch.Workload != nil {
		c.Workload = *patch.Workload
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}

	return s.update(ctx, repo, c)
}

// SearchByName returns the courses whose name contains name, ignoring case.
func (s *CourseService) SearchByName(ctx context.Context, name string) ([]*models.Course, error) {
	list, err := s.repo().SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return list, nil
}
