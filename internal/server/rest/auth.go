package rest

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/mappers"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.auth.Login.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.auth.Refresh.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) me(c *fiber.Ctx) error {
	p, ok := principal(c)
	if !ok {
		return common.ErrorUnauthorized
	}
	return c.JSON(mappers.PrincipalToResponse(p))
}
