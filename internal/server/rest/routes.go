package rest

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/gofiber/fiber/v2"
)

const (
	admin   = common.RoleAdmin
	teacher = common.RoleTeacher
	student = common.RoleStudent
	user    = common.RoleUser
)

func (h *Handler) registerRoutes(app *fiber.App) {
	authn := h.authenticate

	app.Get("/health", h.health)

	a := app.Group("/auth")
	a.Post("/login", h.login)
	a.Post("/refresh", h.refresh)
	a.Get("/me", authn, h.me)

	// static segments are registered before :id so they win
	s := app.Group("/students")
	s.Post("/", authn, requireRoles(student, admin), h.enrollStudent)
	s.Get("/search", authn, requireRoles(admin, teacher), h.searchStudents)
	s.Get("/refactored/:id", authn, requireRoles(admin), h.getStudentDirect)
	s.Patch("/update/:id", authn, requireRoles(admin), h.updateStudent)
	s.Delete("/deletar/:id", authn, requireRoles(user, admin), h.deleteStudent)
	s.Get("/:id", authn, requireRoles(admin), h.getStudent)

	c := app.Group("/courses")
	c.Post("/", authn, requireRoles(admin, teacher), h.registerCourse)
	c.Get("/search", authn, h.searchCourses)
	c.Put("/:id/syllabus", authn, requireRoles(admin, teacher), h.syllabusUpload)
	c.Get("/:id/syllabus", authn, h.syllabusDownload)
	c.Get("/:id", authn, h.getCourse)
	c.Put("/:id", authn, requireRoles(admin, teacher), h.replaceCourse)
	c.Patch("/:id", authn, requireRoles(admin, teacher), h.patchCourse)
	c.Delete("/:id", authn, requireRoles(admin, teacher), h.deleteCourse)

	t := app.Group("/teachers")
	t.Post("/", authn, requireRoles(admin), h.createTeacher)
	t.Get("/", authn, requireRoles(admin), h.listTeachers)
	t.Get("/:id", authn, h.getTeacher)
	t.Patch("/:id", authn, requireRoles(admin), h.updateTeacher)
	t.Delete("/:id", authn, requireRoles(admin), h.deleteTeacher)
}
