package usecases

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/mappers"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/google/uuid"
)

type TeacherService interface {
	Create(ctx context.Context, t *models.Teacher) (*models.Teacher, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	List(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, id uuid.UUID, patch services.PersonPatch) (*models.Teacher, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateTeacher struct {
	svc TeacherService
}

func NewCreateTeacher(svc TeacherService) *CreateTeacher {
	return &CreateTeacher{svc: svc}
}

func (u *CreateTeacher) Execute(ctx context.Context, req dto.TeacherRequest) (*dto.TeacherResponse, error) {
	t, err := u.svc.Create(ctx, mappers.TeacherFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.TeacherToResponse(t)
	return &r, nil
}

type UpdateTeacher struct {
	svc TeacherService
}

func NewUpdateTeacher(svc TeacherService) *UpdateTeacher {
	return &UpdateTeacher{svc: svc}
}

func (u *UpdateTeacher) Execute(ctx context.Context, id uuid.UUID, req dto.PersonUpdateRequest) (*dto.TeacherResponse, error) {
	t, err := u.svc.Update(ctx, id, mappers.PersonPatchFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.TeacherToResponse(t)
	return &r, nil
}

type ListTeachers struct {
	svc TeacherService
}

func NewListTeachers(svc TeacherService) *ListTeachers {
	return &ListTeachers{svc: svc}
}

func (u *ListTeachers) Execute(ctx context.Context) ([]dto.TeacherResponse, error) {
	list, err := u.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.TeachersToResponse(list), nil
}

type Teachers struct {
	Create *CreateTeacher
	Get    *GetByID[models.Teacher, dto.TeacherResponse]
	List   *ListTeachers
	Update *UpdateTeacher
	Delete *DeleteByID
}

func NewTeachers(svc TeacherService) *Teachers {
	return &Teachers{
		Create: NewCreateTeacher(svc),
		Get:    NewGetByID(svc.Get, mappers.TeacherToResponse),
		List:   NewListTeachers(svc),
		Update: NewUpdateTeacher(svc),
		Delete: NewDeleteByID("Teacher", svc.Delete),
	}
}
