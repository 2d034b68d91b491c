// Package cli implements devnest-admin, the operator command line: database
// migrations, staff account creation and syllabus uploads. It talks to the
// database and object storage directly, not to the HTTP API.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/logging"
	"github.com/dmitrijs2005/devnest/internal/netx"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/config"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/google/uuid"
)

type Migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

type StaffCreator interface {
	Create(ctx context.Context, u *models.StaffUser) (*models.StaffUser, error)
}

type SyllabusUploader interface {
	SyllabusUploadURL(ctx context.Context, courseID uuid.UUID) (string, error)
}

type App struct {
	config *config.Config
	in     *bufio.Reader
	out    io.Writer
	logger logging.Logger

	// filled by connect
	db       *sql.DB
	migrator Migrator
	staff    StaffCreator
	courses  SyllabusUploader

	connect func(ctx context.Context, a *App) error
	upload  func(ctx context.Context, url string, body []byte, contentType string) error
}

func NewApp(cfg *config.Config, in io.Reader, out io.Writer, l logging.Logger) *App {
	return &App{
		config:  cfg,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  l.With("module", "admin"),
		connect: connectPostgres,
		upload:  netx.UploadToPresignedURL,
	}
}

func connectPostgres(ctx context.Context, a *App) error {
	db, err := dbx.Open(ctx, a.config.DatabaseDSN)
	if err != nil {
		return err
	}
	rm := repomanager.NewPostgresRepositoryManager()

	a.db = db
	a.migrator = rm
	a.staff = services.NewStaffService(db, rm, auth.NewHasher(a.config.BcryptCost))
	a.courses = services.NewCourseService(db, rm, a.config)
	return nil
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "db close", "error", err.Error())
	}
	a.db = nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
