package rest

import (
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/gofiber/fiber/v2"
)

var errStudentNotFound = fmt.Errorf("student %w", common.ErrorNotFound)

func (h *Handler) enrollStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.students.Enroll.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return created(c, "/students/"+r.ID.String(), r)
}

func (h *Handler) getStudent(c *fiber.Ctx) error {
	id, err := pathID(c, errStudentNotFound)
	if err != nil {
		return err
	}
	r, err := h.students.Get.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) getStudentDirect(c *fiber.Ctx) error {
	id, err := pathID(c, errStudentNotFound)
	if err != nil {
		return err
	}
	r, err := h.students.GetDirect.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) searchStudents(c *fiber.Ctx) error {
	list, err := h.students.Search.Execute(c.UserContext(), c.Query("name"), c.Query("course"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *Handler) updateStudent(c *fiber.Ctx) error {
	id, err := pathID(c, errStudentNotFound)
	if err != nil {
		return err
	}
	var req dto.PersonUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.students.Update.Execute(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) deleteStudent(c *fiber.Ctx) error {
	id, err := pathID(c, errStudentNotFound)
	if err != nil {
		return err
	}
	msg, err := h.students.Delete.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(msg)
}
