package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/courses"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/crud"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/staff"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/students"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/teachers"
	"github.com/google/uuid"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var errUnsupported = errors.New("unsupported by fake")

// memRepo is an in-memory crud.Repository keyed by the entity id.
type memRepo[T any] struct {
	id   func(*T) *uuid.UUID
	name func(*T) string
	rows map[uuid.UUID]T

	err error // returned by every call when set
}

func newMemRepo[T any](id func(*T) *uuid.UUID, name func(*T) string) *memRepo[T] {
	return &memRepo[T]{id: id, name: name, rows: map[uuid.UUID]T{}}
}

func (m *memRepo[T]) Create(_ context.Context, e *T) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	id := m.id(e)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if _, ok := m.rows[*id]; ok {
		return nil, common.ErrorAlreadyExists
	}
	m.rows[*id] = *e
	return e, nil
}

func (m *memRepo[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}

func (m *memRepo[T]) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memRepo[T]) Update(_ context.Context, e *T) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	id := *m.id(e)
	if _, ok := m.rows[id]; !ok {
		return nil, common.ErrorNotFound
	}
	m.rows[id] = *e
	return e, nil
}

func (m *memRepo[T]) DeleteByID(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo[T]) ExistsBy(context.Context, string, any) (bool, error) {
	return false, errUnsupported
}

func (m *memRepo[T]) FindOneBy(context.Context, string, any) (*T, error) {
	return nil, errUnsupported
}

func (m *memRepo[T]) FindAllBy(context.Context, string, any) ([]*T, error) {
	return nil, errUnsupported
}

func (m *memRepo[T]) FindAll(ctx context.Context) ([]*T, error) {
	return m.filter(func(*T) bool { return true })
}

func (m *memRepo[T]) Match(context.Context, crud.Example) ([]*T, error) {
	return nil, errUnsupported
}

func (m *memRepo[T]) filter(keep func(*T) bool) ([]*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*T, 0)
	for _, e := range m.rows {
		e := e
		if keep(&e) {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.name(out[i]) < m.name(out[j]) })
	return out, nil
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type fakeStudents struct {
	*memRepo[models.Student]
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{newMemRepo(
		func(s *models.Student) *uuid.UUID { return &s.ID },
		func(s *models.Student) string { return s.Name },
	)}
}

func (f *fakeStudents) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.rows {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudents) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.rows {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStudents) Search(_ context.Context, name, course string) ([]*models.Student, error) {
	return f.filter(func(s *models.Student) bool {
		return contains(s.Name, name) && contains(s.Course, course)
	})
}

type fakeTeachers struct {
	*memRepo[models.Teacher]
}

func newFakeTeachers() *fakeTeachers {
	return &fakeTeachers{newMemRepo(
		func(t *models.Teacher) *uuid.UUID { return &t.ID },
		func(t *models.Teacher) string { return t.Name },
	)}
}

func (f *fakeTeachers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, t := range f.rows {
		if t.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeachers) FindByEmail(_ context.Context, email string) (*models.Teacher, error) {
	for _, t := range f.rows {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeCourses struct {
	*memRepo[models.Course]
	setKeyErr error
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{memRepo: newMemRepo(
		func(c *models.Course) *uuid.UUID { return &c.ID },
		func(c *models.Course) string { return c.Name },
	)}
}

func (f *fakeCourses) ExistsByName(_ context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, c := range f.rows {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourses) SearchByName(_ context.Context, name string) ([]*models.Course, error) {
	return f.filter(func(c *models.Course) bool { return contains(c.Name, name) })
}

func (f *fakeCourses) SetSyllabusKey(_ context.Context, id uuid.UUID, key string) error {
	if f.setKeyErr != nil {
		return f.setKeyErr
	}
	c, ok := f.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	c.SyllabusKey = key
	f.rows[id] = c
	return nil
}

type fakeStaff struct {
	*memRepo[models.StaffUser]
}

func newFakeStaff() *fakeStaff {
	return &fakeStaff{newMemRepo(
		func(u *models.StaffUser) *uuid.UUID { return &u.ID },
		func(u *models.StaffUser) string { return u.Email },
	)}
}

func (f *fakeStaff) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStaff) FindByEmail(_ context.Context, email string) (*models.StaffUser, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// fakeRefreshRepo holds at most one redeemable token; Consume hands it out
// once.
type fakeRefreshRepo struct {
	stored     *models.RefreshToken
	consumeErr error
	createErr  error
	revokeErr  error

	created  []*models.RefreshToken
	consumed []string
	revoked  []uuid.UUID
}

func (f *fakeRefreshRepo) Create(_ context.Context, t *models.RefreshToken, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	t.Expires = time.Now().Add(validity)
	f.created = append(f.created, t)
	f.stored = t
	return nil
}

func (f *fakeRefreshRepo) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	if f.stored == nil || f.stored.Token != token {
		return nil, common.ErrorNotFound
	}
	t := f.stored
	f.stored = nil
	f.consumed = append(f.consumed, token)
	return t, nil
}

func (f *fakeRefreshRepo) DeleteBySubject(_ context.Context, subjectID uuid.UUID) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, subjectID)
	if f.stored != nil && f.stored.SubjectID == subjectID {
		f.stored = nil
	}
	return nil
}

type fakeRepoManager struct {
	students *fakeStudents
	teachers *fakeTeachers
	courses  *fakeCourses
	staff    *fakeStaff
	refresh  *fakeRefreshRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		students: newFakeStudents(),
		teachers: newFakeTeachers(),
		courses:  newFakeCourses(),
		staff:    newFakeStaff(),
		refresh:  &fakeRefreshRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Students(dbx.DBTX) students.Repository           { return m.students }
func (m *fakeRepoManager) Teachers(dbx.DBTX) teachers.Repository           { return m.teachers }
func (m *fakeRepoManager) Courses(dbx.DBTX) courses.Repository             { return m.courses }
func (m *fakeRepoManager) Staff(dbx.DBTX) staff.Repository                 { return m.staff }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
