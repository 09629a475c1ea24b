package response

import (
	"errors"

	apperr "acquiring/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationFailed returns the validator messages unchanged.
func ValidationFailed(c *fiber.Ctx, messages []string) error {
	if messages == nil {
		messages = []string{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"code":   apperr.ErrValidationFailed.Code,
		"errors": messages,
	})
}

// FromError maps a domain error to its HTTP status. Errors of unknown kind
// are reported as 500 without leaking their text.
func FromError(c *fiber.Ctx, err error) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return ValidationFailed(c, verr.Messages)
	}

	status := StatusOf(err)
	if status == fiber.StatusInternalServerError {
		return ServerError(c, "internal server error")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"code":  apperr.CodeOf(err),
	})
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindComputation:
		return fiber.StatusUnprocessableEntity
	case apperr.KindAssignment:
		return fiber.StatusConflict
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
