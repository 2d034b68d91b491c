package usecases

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/mappers"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/google/uuid"
)

type CourseService interface {
	Register(ctx context.Context, c *models.Course) (*models.Course, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Replace(ctx context.Context, id uuid.UUID, name string, workload int, description string) (*models.Course, error)
	Patch(ctx context.Context, id uuid.UUID, patch services.CoursePatch) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string) ([]*models.Course, error)
	SyllabusUploadURL(ctx context.Context, id uuid.UUID) (string, error)
	SyllabusDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

type RegisterCourse struct {
	svc CourseService
}

func NewRegisterCourse(svc CourseService) *RegisterCourse {
	return &RegisterCourse{svc: svc}
}

func (u *RegisterCourse) Execute(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error) {
	c, err := u.svc.Register(ctx, mappers.CourseFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.CourseToResponse(c)
	return &r, nil
}

type ReplaceCourse struct {
	svc CourseService
}

func NewReplaceCourse(svc CourseService) *ReplaceCourse {
	return &ReplaceCourse{svc: svc}
}

func (u *ReplaceCourse) Execute(ctx context.Context, id uuid.UUID, req dto.CourseRequest) (*dto.CourseResponse, error) {
	in := mappers.CourseFromRequest(req)
	c, err := u.svc.Replace(ctx, id, in.Name, in.Workload, in.Description)
	if err != nil {
		return nil, err
	}
	r := mappers.CourseToResponse(c)
	return &r, nil
}

type PatchCourse struct {
	svc CourseService
}

func NewPatchCourse(svc CourseService) *PatchCourse {
	return &PatchCourse{svc: svc}
}

func (u *PatchCourse) Execute(ctx context.Context, id uuid.UUID, req dto.CoursePatchRequest) (*dto.CourseResponse, error) {
	c, err := u.svc.Patch(ctx, id, mappers.CoursePatchFromRequest(req))
	if err != nil {
		return nil, err
	}
	r := mappers.CourseToResponse(c)
	return &r, nil
}

type SearchCourses struct {
	svc CourseService
}

func NewSearchCourses(svc CourseService) *SearchCourses {
	return &SearchCourses{svc: svc}
}

func (u *SearchCourses) Execute(ctx context.Context, name string) ([]dto.CourseResponse, error) {
	list, err := u.svc.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return mappers.CoursesToResponse(list), nil
}

// SyllabusLink returns a presigned upload or download URL.
type SyllabusLink struct {
	presign func(ctx context.Context, id uuid.UUID) (string, error)
}

func (u *SyllabusLink) Execute(ctx context.Context, id uuid.UUID) (*dto.SyllabusURL, error) {
	url, err := u.presign(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SyllabusURL{URL: url, ExpiresIn: int(services.SyllabusURLValidity.Seconds())}, nil
}

type Courses struct {
	Register         *RegisterCourse
	Get              *GetByID[models.Course, dto.CourseResponse]
	Replace          *ReplaceCourse
	Patch            *PatchCourse
	Delete           *DeleteByID
	Search           *SearchCourses
	SyllabusUpload   *SyllabusLink
	SyllabusDownload *SyllabusLink
}

func NewCourses(svc CourseService) *Courses {
	return &Courses{
		Register:         NewRegisterCourse(svc),
		Get:              NewGetByID(svc.Get, mappers.CourseToResponse),
		Replace:          NewReplaceCourse(svc),
		Patch:            NewPatchCourse(svc),
		Delete:           NewDeleteByID("Course", svc.Delete),
		Search:           NewSearchCourses(svc),
		SyllabusUpload:   &SyllabusLink{presign: svc.SyllabusUploadURL},
		SyllabusDownload: &SyllabusLink{presign: svc.SyllabusDownloadURL},
	}
}
