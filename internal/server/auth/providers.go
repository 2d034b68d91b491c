package auth

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/staff"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/students"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/teachers"
	"github.com/google/uuid"
)

// StudentProvider authenticates students; they always hold STUDENT.
type StudentProvider struct {
	Repo students.Repository
}

func (p StudentProvider) Lookup(ctx context.Context, login string) (*Account, error) {
	s, err := p.Repo.FindByEmail(ctx, login)
	if err != nil {
		return nil, err
	}
	return &Account{
		Principal:    Principal{ID: s.ID, Login: s.Email, Name: s.Name, Role: common.RoleStudent},
		PasswordHash: s.Password,
	}, nil
}

func (p StudentProvider) Resolve(ctx context.Context, id uuid.UUID) (*Principal, error) {
	s, err := p.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Principal{ID: s.ID, Login: s.Email, Name: s.Name, Role: common.RoleStudent}, nil
}

// TeacherProvider authenticates teachers; they always hold TEACHER.
type TeacherProvider struct {
	Repo teachers.Repository
}

func (p TeacherProvider) Lookup(ctx context.Context, login string) (*Account, error) {
	t, err := p.Repo.FindByEmail(ctx, login)
	if err != nil {
		return nil, err
	}
	return &Account{
		Principal:    Principal{ID: t.ID, Login: t.Email, Name: t.Name, Role: common.RoleTeacher},
		PasswordHash: t.Password,
	}, nil
}

func (p TeacherProvider) Resolve(ctx context.Context, id uuid.UUID) (*Principal, error) {
	t, err := p.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Principal{ID: t.ID, Login: t.Email, Name: t.Name, Role: common.RoleTeacher}, nil
}

// StaffProvider authenticates back-office accounts with their stored role.
type StaffProvider struct {
	Repo staff.Repository
}

func (p StaffProvider) Lookup(ctx context.Context, login string) (*Account, error) {
	u, err := p.Repo.FindByEmail(ctx, login)
	if err != nil {
		return nil, err
	}
	return &Account{
		Principal:    Principal{ID: u.ID, Login: u.Email, Name: u.Name, Role: u.Role},
		PasswordHash: u.Password,
	}, nil
}

func (p StaffProvider) Resolve(ctx context.Context, id uuid.UUID) (*Principal, error) {
	u, err := p.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Principal{ID: u.ID, Login: u.Email, Name: u.Name, Role: u.Role}, nil
}
