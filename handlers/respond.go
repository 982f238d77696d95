package handlers

import (
	"errors"

	"deliwer-loyalty-system/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy onto HTTP statuses. Validation and
// permission errors carry enough detail for the caller to self-correct.
func respondError(c *fiber.Ctx, err error) error {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"missing": validation.Missing,
		})
	}

	if errors.Is(err, models.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var forbidden *models.ForbiddenError
	if errors.As(err, &forbidden) {
		body := fiber.Map{"error": forbidden.Error()}
		if len(forbidden.Missing) > 0 {
			body["missing_permissions"] = forbidden.Missing
		}
		return c.Status(fiber.StatusForbidden).JSON(body)
	}

	var restricted *models.RestrictedDataAccessError
	if errors.As(err, &restricted) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": restricted.Error(),
		})
	}

	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	}

	var invalidState *models.InvalidStateError
	if errors.As(err, &invalidState) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": invalidState.Error(),
		})
	}

	var invariant *models.InvariantViolationError
	if errors.As(err, &invariant) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": invariant.Error(),
		})
	}

	var collaborator *models.CollaboratorError
	if errors.As(err, &collaborator) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": collaborator.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal error",
	})
}
