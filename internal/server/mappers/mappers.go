// Package mappers converts between the HTTP DTOs and the persisted models.
// Emails are normalised here, before any lookup sees them.
package mappers

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/services"
)

func dateToModel(d *dto.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func dateToDTO(t *time.Time) *dto.Date {
	if t == nil {
		return nil
	}
	return &dto.Date{Time: *t}
}

func person(name, email, password string, dob *dto.Date) models.Person {
	return models.Person{
		Name:        strings.TrimSpace(name),
		Email:       common.NormalizeEmail(email),
		Password:    password,
		DateOfBirth: dateToModel(dob),
	}
}

func StudentFromRequest(r dto.StudentRequest) *models.Student {
	return &models.Student{
		Person: person(r.Name, r.Email, r.Password, r.DateOfBirth),
		Course: strings.TrimSpace(r.Course),
	}
}

func StudentToResponse(s *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		DateOfBirth: dateToDTO(s.DateOfBirth),
		Course:      s.Course,
		Roles:       string(s.Roles),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func StudentsToResponse(list []*models.Student) []dto.StudentResponse {
	out := make([]dto.StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, StudentToResponse(s))
	}
	return out
}

func TeacherFromRequest(r dto.TeacherRequest) *models.Teacher {
	return &models.Teacher{
		Person: person(r.Name, r.Email, r.Password, r.DateOfBirth),
		Course: strings.TrimSpace(r.Course),
	}
}

func TeacherToResponse(t *models.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		DateOfBirth: dateToDTO(t.DateOfBirth),
		Course:      t.Course,
		Roles:       string(t.Roles),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func TeachersToResponse(list []*models.Teacher) []dto.TeacherResponse {
	out := make([]dto.TeacherResponse, 0, len(list))
	for _, t := range list {
		out = append(out, TeacherToResponse(t))
	}
	return out
}

// PersonPatchFromRequest keeps absent fields nil.
func PersonPatchFromRequest(r dto.PersonUpdateRequest) services.PersonPatch {
	p := services.PersonPatch{ID: r.ID, Password: r.Password}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	if r.Email != nil {
		email := common.NormalizeEmail(*r.Email)
		p.Email = &email
	}
	return p
}

func CourseFromRequest(r dto.CourseRequest) *models.Course {
	c := &models.Course{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
	if r.Workload != nil {
		c.Workload = *r.Workload
	}
	return c
}

func CoursePatchFromRequest(r dto.CoursePatchRequest) services.CoursePatch {
	p := services.CoursePatch{Workload: r.Workload}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		p.Description = &d
	}
	return p
}

func CourseToResponse(c *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Workload:    c.Workload,
		Description: c.Description,
		HasSyllabus: c.SyllabusKey != "",
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CoursesToResponse(list []*models.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CourseToResponse(c))
	}
	return out
}

func PrincipalToResponse(p *auth.Principal) dto.PrincipalResponse {
	return dto.PrincipalResponse{ID: p.ID, Login: p.Login, Name: p.Name, Role: string(p.Role)}
}

func TokensToResponse(p *services.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken, TokenType: "Bearer"}
}
