package usecases

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/mappers"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/google/uuid"
)

type StudentService interface {
	Enroll(ctx context.Context, s *models.Student) (*models.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetChecked(ctx context.Context, id uuid.UUID) (*models.Student, error)
	Update(ctx context.Context, id uuid.UUID, patch services.PersonPatch) (*models.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, name, course string) ([]*models.Student, error)
}

type EnrollStudent struct {
	svc StudentService
}

func NewEnrollStudent(svc StudentService) *EnrollStudent {
	return &EnrollStudent{svc: svc}
}

func (u *EnrollStudent) Execute(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	s, err := u.svc.Enroll(ctx, mappers.StudentFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.StudentToResponse(s)
	return &r, nil
}

type UpdateStudent struct {
	svc StudentService
}

func NewUpdateStudent(svc StudentService) *UpdateStudent {
	return &UpdateStudent{svc: svc}
}

func (u *UpdateStudent) Execute(ctx context.Context, id uuid.UUID, req dto.PersonUpdateRequest) (*dto.StudentResponse, error) {
	s, err := u.svc.Update(ctx, id, mappers.PersonPatchFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.StudentToResponse(s)
	return &r, nil
}

type SearchStudents struct {
	svc StudentService
}

func NewSearchStudents(svc StudentService) *SearchStudents {
	return &SearchStudents{svc: svc}
}

func (u *SearchStudents) Execute(ctx context.Context, name, course string) ([]dto.StudentResponse, error) {
	list, err := u.svc.Search(ctx, name, course)
	if err != nil {
		return nil, err
	}
	return mappers.StudentsToResponse(list), nil
}

// Students groups the student use cases.
type Students struct {
	Enroll    *EnrollStudent
	Get       *GetByID[models.Student, dto.StudentResponse] // existence check first
	GetDirect *GetByID[models.Student, dto.StudentResponse]
	Update    *UpdateStudent
	Delete    *DeleteByID
	Search    *SearchStudents
}

func NewStudents(svc StudentService) *Students {
	return &Students{
		Enroll:    NewEnrollStudent(svc),
		Get:       NewGetByID(svc.GetChecked, mappers.StudentToResponse),
		GetDirect: NewGetByID(svc.Get, mappers.StudentToResponse),
		Update:    NewUpdateStudent(svc),
		Delete:    NewDeleteByID("Student", svc.Delete),
		Search:    NewSearchStudents(svc),
	}
}
