package rest

import (
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/gofiber/fiber/v2"
)

var errTeacherNotFound = fmt.Errorf("teacher %w", common.ErrorNotFound)

func (h *Handler) createTeacher(c *fiber.Ctx) error {
	var req dto.TeacherRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.teachers.Create.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return created(c, "/teachers/"+r.ID.String(), r)
}

func (h *Handler) listTeachers(c *fiber.Ctx) error {
	list, err := h.teachers.List.Execute(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *Handler) getTeacher(c *fiber.Ctx) error {
	id, err := pathID(c, errTeacherNotFound)
	if err != nil {
		return err
	}
	r, err := h.teachers.Get.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) updateTeacher(c *fiber.Ctx) error {
	id, err := pathID(c, errTeacherNotFound)
	if err != nil {
		return err
	}
	var req dto.PersonUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.teachers.Update.Execute(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) deleteTeacher(c *fiber.Ctx) error {
	id, err := pathID(c, errTeacherNotFound)
	if err != nil {
		return err
	}
	msg, err := h.teachers.Delete.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(msg)
}
