package server

import (
	"context"
	"errors"
	"time"

	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const defaultRequestTimeout = 5 * time.Second

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 422 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewMalformedInputError("Invalid "+param+": must be a positive integer"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseForm decodes the request body into out.
// On failure it writes a 422 JSON response and returns errResponseWritten.
func (s *Server) parseForm(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		_ = models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewMalformedInputError("Malformed form body"))
		return errResponseWritten
	}
	return nil
}

// missingField writes a 422 JSON response naming the absent form field.
func missingField(c *fiber.Ctx, name string) error {
	return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
		models.NewMalformedInputError("Field required: "+name))
}

// mapServiceError converts an error code into the HTTP status it is reported with.
func mapServiceError(err error) int {
	switch models.ErrorCode(err) {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeMalformedInput:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// requestContext derives the context every storage call of a request runs under.
func (s *Server) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if s.config != nil {
		timeout = s.config.RequestTimeout()
	}
	return context.WithTimeout(c.UserContext(), timeout)
}
