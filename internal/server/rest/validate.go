package rest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var errMalformedBody = errors.New("malformed request body")

// bind decodes the JSON body into out and validates it.
func (h *Handler) bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return h.validate.Struct(out)
}
