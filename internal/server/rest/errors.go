package rest

import (
	"errors"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "internal error"

// authErrors answer 401 with the sentinel text so token parser details stay
// out of the response.
var authErrors = []error{
	common.ErrInvalidCredentials,
	common.ErrRefreshTokenExpired,
	common.ErrTokenExpired,
	common.ErrInvalidToken,
	common.ErrorUnauthorized,
}

// toErrorResponse maps an error returned by a handler to the error envelope.
// The boolean is false for errors the caller did not anticipate.
func toErrorResponse(err error) (dto.ErrorDefault, bool) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]dto.ErrorField, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, dto.ErrorField{Field: fe.Field(), Message: dto.FieldMessage(fe)})
		}
		return dto.ErrorDefault{
			Status:      fiber.StatusUnprocessableEntity,
			Message:     "Validation failed",
			FieldErrors: fields,
		}, true
	}

	for _, sentinel := range authErrors {
		if errors.Is(err, sentinel) {
			return dto.ErrorDefault{Status: fiber.StatusUnauthorized, Message: sentinel.Error()}, true
		}
	}

	var fe *fiber.Error
	switch {
	case errors.Is(err, errMalformedBody):
		return dto.ErrorDefault{Status: fiber.StatusBadRequest, Message: errMalformedBody.Error()}, true
	case errors.Is(err, common.ErrorValidation):
		return dto.ErrorDefault{Status: fiber.StatusUnprocessableEntity, Message: err.Error()}, true
	case errors.Is(err, common.ErrorAlreadyExists):
		return dto.ErrorDefault{Status: fiber.StatusConflict, Message: err.Error()}, true
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorNoSyllabus):
		return dto.ErrorDefault{Status: fiber.StatusNotFound, Message: err.Error()}, true
	case errors.Is(err, common.ErrorForbidden):
		return dto.ErrorDefault{Status: fiber.StatusForbidden, Message: "Access denied"}, true
	case errors.As(err, &fe):
		return dto.ErrorDefault{Status: fe.Code, Message: fe.Message}, fe.Code < fiber.StatusInternalServerError
	}

	return dto.ErrorDefault{Status: fiber.StatusInternalServerError, Message: internalErrorMessage}, false
}

// errorHandler is the application-wide Fiber error handler.
func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	resp, expected := toErrorResponse(err)
	if !expected {
		h.logger.Error(c.UserContext(), "request failed",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
	}
	if resp.Status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+common.AuthRealm+`"`)
	}
	return c.Status(resp.Status).JSON(resp)
}
