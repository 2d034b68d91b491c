package rest

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const principalKey = "principal"

// authenticate accepts either HTTP Basic credentials or a bearer access
// token and stores the resulting principal in the request locals.
func (h *Handler) authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, value, _ := strings.Cut(header, " ")
	value = strings.TrimSpace(value)

	var (
		p   *auth.Principal
		err error
	)
	switch {
	case strings.EqualFold(scheme, "Basic") && value != "":
		login, password, ok := decodeBasic(value)
		if !ok {
			return common.ErrorUnauthorized
		}
		p, err = h.auth.Credentials.Authenticate(c.UserContext(), login, password)
	case strings.EqualFold(scheme, "Bearer") && value != "":
		p, err = h.auth.Credentials.ParseAccessToken(value)
	default:
		return common.ErrorUnauthorized
	}
	if err != nil {
		return err
	}

	c.Locals(principalKey, p)
	return c.Next()
}

func decodeBasic(value string) (login, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(raw), ":")
}

// principal returns the caller stored by authenticate.
func principal(c *fiber.Ctx) (*auth.Principal, bool) {
	p, ok := c.Locals(principalKey).(*auth.Principal)
	return p, ok && p != nil
}

// requireRoles lets the request through when the caller holds one of roles.
// Must run after authenticate.
func requireRoles(roles ...common.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := principal(c)
		if !ok {
			return common.ErrorUnauthorized
		}
		if !p.HasAnyRole(roles...) {
			return common.ErrorForbidden
		}
		return c.Next()
	}
}

// logRequests writes one line per request. Errors are rendered here so the
// logged status matches what the client receives.
func (h *Handler) logRequests(c *fiber.Ctx) error {
	start := time.Now()

	if chainErr := c.Next(); chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	args := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start).String(),
	}
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		args = append(args, "request_id", id)
	}
	h.logger.Info(c.UserContext(), "request", args...)
	return nil
}
