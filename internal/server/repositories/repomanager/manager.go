package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/courses"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/staff"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/students"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/teachers"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Students(db dbx.DBTX) students.Repository
	Teachers(db dbx.DBTX) teachers.Repository
	Courses(db dbx.DBTX) courses.Repository
	Staff(db dbx.DBTX) staff.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
