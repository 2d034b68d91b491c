package rest

import (
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/usecases"
	"github.com/gofiber/fiber/v2"
)

var errCourseNotFound = fmt.Errorf("course %w", common.ErrorNotFound)

func (h *Handler) registerCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.courses.Register.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return created(c, "/courses/"+r.ID.String(), r)
}

func (h *Handler) getCourse(c *fiber.Ctx) error {
	id, err := pathID(c, errCourseNotFound)
	if err != nil {
		return err
	}
	r, err := h.courses.Get.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) searchCourses(c *fiber.Ctx) error {
	list, err := h.courses.Search.Execute(c.UserContext(), c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *Handler) replaceCourse(c *fiber.Ctx) error {
	id, err := pathID(c, errCourseNotFound)
	if err != nil {
		return err
	}
	var req dto.CourseRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.courses.Replace.Execute(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) patchCourse(c *fiber.Ctx) error {
	id, err := pathID(c, errCourseNotFound)
	if err != nil {
		return err
	}
	var req dto.CoursePatchRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.courses.Patch.Execute(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) deleteCourse(c *fiber.Ctx) error {
	id, err := pathID(c, errCourseNotFound)
	if err != nil {
		return err
	}
	msg, err := h.courses.Delete.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(msg)
}

func (h *Handler) syllabusUpload(c *fiber.Ctx) error {
	return h.syllabusLink(c, h.courses.SyllabusUpload)
}

func (h *Handler) syllabusDownload(c *fiber.Ctx) error {
	return h.syllabusLink(c, h.courses.SyllabusDownload)
}

func (h *Handler) syllabusLink(c *fiber.Ctx, uc *usecases.SyllabusLink) error {
	id, err := pathID(c, errCourseNotFound)
	if err != nil {
		return err
	}
	r, err := uc.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}
