// Package server wires DevNest together: it opens the database, applies
// migrations, builds repositories, services and use cases, and runs the HTTP
// API next to the gRPC health endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/logging"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/dmitrijs2005/devnest/internal/server/config"
	"github.com/dmitrijs2005/devnest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devnest/internal/server/rest"
	"github.com/dmitrijs2005/devnest/internal/server/services"
	"github.com/dmitrijs2005/devnest/internal/server/usecases"

	gs "github.com/dmitrijs2005/devnest/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *rest.Server
	grpc   *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, err := dbx.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	app, err := newApp(c, logger, db, rm)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// newApp builds services and transports on top of an open database.
func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	hasher := auth.NewHasher(c.BcryptCost)

	authenticator, err := auth.NewAuthenticator(hasher,
		auth.StaffProvider{Repo: rm.Staff(db)},
		auth.TeacherProvider{Repo: rm.Teachers(db)},
		auth.StudentProvider{Repo: rm.Students(db)},
	)
	if err != nil {
		return nil, fmt.Errorf("authenticator init error: %w", err)
	}

	h := rest.NewHandler(
		usecases.NewStudents(services.NewStudentService(db, rm, hasher)),
		usecases.NewTeachers(services.NewTeacherService(db, rm, hasher)),
		usecases.NewCourses(services.NewCourseService(db, rm, c)),
		usecases.NewAuth(services.NewAuthService(db, rm, authenticator, c)),
		db,
		logger.With("module", "rest"),
	)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   rest.NewServer(c.EndpointAddrHTTP, h, logger),
		grpc:   gs.NewGRPCServer(c.EndpointAddrGRPC, logger, db, c.HealthCheckInterval),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serve runs one transport; a failure stops the whole app.
func (app *App) serve(ctx context.Context, cancelFunc context.CancelFunc, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.serve(ctx, cancelFunc, "http", app.http.Run)
	}()
	go func() {
		defer wg.Done()
		app.serve(ctx, cancelFunc, "grpc", app.grpc.Run)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
