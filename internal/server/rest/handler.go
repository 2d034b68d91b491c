// Package rest is DevNest's HTTP API, built on Fiber. Handlers decode and
// validate the request, run one use case and write its result. Errors are
// rendered by a single error handler into the dto.ErrorDefault envelope.
package rest

import (
	"context"

	"github.com/dmitrijs2005/devnest/internal/logging"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/usecases"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	students *usecases.Students
	teachers *usecases.Teachers
	courses  *usecases.Courses
	auth     *usecases.Auth
	db       Pinger
	validate *validator.Validate
	logger   logging.Logger
}

func NewHandler(s *usecases.Students, t *usecases.Teachers, c *usecases.Courses, a *usecases.Auth, db Pinger, l logging.Logger) *Handler {
	return &Handler{
		students: s,
		teachers: t,
		courses:  c,
		auth:     a,
		db:       db,
		validate: dto.NewValidator(),
		logger:   l,
	}
}

// NewApp builds the Fiber application with middleware and every route.
func (h *Handler) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "DevNest API",
		ErrorHandler:          h.errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(h.logRequests)
	app.Use(recover.New())
	app.Use(cors.New())

	h.registerRoutes(app)
	return app
}

// pathID parses the :id parameter. A malformed id cannot name an existing
// record, so it is reported as not found.
func pathID(c *fiber.Ctx, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

func created(c *fiber.Ctx, location string, body any) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(body)
}
