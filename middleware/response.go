package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"coursehub/services"
)

// JsonResponse writes data as the response body with the given status.
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorJSON writes the {"error": message} document.
func ErrorJSON(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// ServiceError maps a service error to its HTTP status. Unknown errors
// become a generic 500; detail stays server-side.
func ServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var capacityErr *services.CapacityExceededError

	switch {
	case errors.As(err, &validationErr):
		return ErrorJSON(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		return ErrorJSON(c, fiber.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &capacityErr):
		return ErrorJSON(c, fiber.StatusBadRequest, capacityErr.Error())
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled service error")
		return ErrorJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
