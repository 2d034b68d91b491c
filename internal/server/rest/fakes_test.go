package rest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeStudents struct {
	byID map[uuid.UUID]*models.Student
	err  error
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{byID: map[uuid.UUID]*models.Student{}}
}

func (f *fakeStudents) Enroll(_ context.Context, s *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.Email == s.Email {
			return nil, fmt.Errorf("student with email %s %w", s.Email, common.ErrorAlreadyExists)
		}
	}
	s.ID = uuid.New()
	s.Password = "$2a$hash"
	s.Roles = common.RoleStudent
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeStudents) Get(_ context.Context, id uuid.UUID) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("student %w", common.ErrorNotFound)
	}
	return s, nil
}

func (f *fakeStudents) GetChecked(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return f.Get(ctx, id)
}

func (f *fakeStudents) Update(ctx context.Context, id uuid.UUID, p services.PersonPatch) (*models.Student, error) {
	s, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ID != nil && *p.ID != id {
		return nil, fmt.Errorf("student %w", common.ErrorNotFound)
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	return s, nil
}

func (f *fakeStudents) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStudents) Search(_ context.Context, name, course string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.byID {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) &&
			strings.Contains(strings.ToLower(s.Course), strings.ToLower(course)) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTeachers struct {
	byID map[uuid.UUID]*models.Teacher
}

func newFakeTeachers() *fakeTeachers {
	return &fakeTeachers{byID: map[uuid.UUID]*models.Teacher{}}
}

func (f *fakeTeachers) Create(_ context.Context, t *models.Teacher) (*models.Teacher, error) {
	t.ID = uuid.New()
	t.Roles = common.RoleTeacher
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeTeachers) Get(_ context.Context, id uuid.UUID) (*models.Teacher, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("teacher %w", common.ErrorNotFound)
	}
	return t, nil
}

func (f *fakeTeachers) List(context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTeachers) Update(ctx context.Context, id uuid.UUID, p services.PersonPatch) (*models.Teacher, error) {
	t, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	return t, nil
}

func (f *fakeTeachers) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.byID, id)
	return nil
}

type fakeCourses struct {
	byID map[uuid.UUID]*models.Course
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{byID: map[uuid.UUID]*models.Course{}}
}

func (f *fakeCourses) Register(_ context.Context, c *models.Course) (*models.Course, error) {
	for _, e := range f.byID {
		if strings.EqualFold(e.Name, c.Name) {
			return nil, fmt.Errorf("course with name %s %w", c.Name, common.ErrorAlreadyExists)
		}
	}
	c.ID = uuid.New()
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCourses) Get(_ context.Context, id uuid.UUID) (*models.Course, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("course %w", common.ErrorNotFound)
	}
	return c, nil
}

func (f *fakeCourses) Replace(ctx context.Context, id uuid.UUID, name string, workload int, description string) (*models.Course, error) {
	return f.Patch(ctx, id, services.CoursePatch{Name: &name, Workload: &workload, Description: &description})
}

func (f *fakeCourses) Patch(ctx context.Context, id uuid.UUID, p services.CoursePatch) (*models.Course, error) {
	c, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Workload != nil {
		c.Workload = *p.Workload
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	return c, nil
}

func (f *fakeCourses) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCourses) SearchByName(_ context.Context, name string) ([]*models.Course, error) {
	out := []*models.Course{}
	for _, c := range f.byID {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourses) SyllabusUploadURL(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := f.Get(ctx, id)
	if err != nil {
		return "", err
	}
	c.SyllabusKey = "courses/" + id.String() + "/s.pdf"
	return "http://s3.local/put/" + c.SyllabusKey, nil
}

func (f *fakeCourses) SyllabusDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := f.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if c.SyllabusKey == "" {
		return "", common.ErrorNoSyllabus
	}
	return "http://s3.local/get/" + c.SyllabusKey, nil
}

type account struct {
	password  string
	principal auth.Principal
}

// fakeAuth accepts Basic credentials from accounts and bearer tokens of the
// form "token-<ROLE>".
type fakeAuth struct {
	accounts map[string]account
	lookErr  error
}

func (f *fakeAuth) Authenticate(_ context.Context, login, password string) (*auth.Principal, error) {
	if f.lookErr != nil {
		return nil, fmt.Errorf("error looking up account: %w", f.lookErr)
	}
	a, ok := f.accounts[login]
	if !ok || a.password != password {
		return nil, common.ErrInvalidCredentials
	}
	p := a.principal
	return &p, nil
}

func (f *fakeAuth) ParseAccessToken(token string) (*auth.Principal, error) {
	role, ok := strings.CutPrefix(token, "token-")
	if !ok || !common.Role(role).Valid() {
		return nil, fmt.Errorf("%w: signature is invalid", common.ErrInvalidToken)
	}
	return &auth.Principal{ID: uuid.New(), Login: strings.ToLower(role) + "@devnest.io", Role: common.Role(role)}, nil
}

func (f *fakeAuth) Login(ctx context.Context, login, password string) (*services.TokenPair, error) {
	p, err := f.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	return &services.TokenPair{AccessToken: "token-" + string(p.Role), RefreshToken: "refresh-1"}, nil
}

func (f *fakeAuth) Refresh(_ context.Context, refreshToken string) (*services.TokenPair, error) {
	switch refreshToken {
	case "refresh-1":
		return &services.TokenPair{AccessToken: "token-ADMIN", RefreshToken: "refresh-2"}, nil
	case "expired":
		return nil, common.ErrRefreshTokenExpired
	}
	return nil, common.ErrInvalidToken
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }
