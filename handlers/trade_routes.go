package handlers

import (
	"deliwer-loyalty-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupTradeRoutes wires the public trade-in flow: instant quotes and real
// submissions.
func SetupTradeRoutes(app *fiber.App, heroService *services.HeroService) {
	// Instant quote — pure computation, nothing persisted.
	app.Post("/trade/valuation", func(c *fiber.Ctx) error {
		var req struct {
			PhoneModel     string `json:"phone_model"`
			PhoneCondition string `json:"phone_condition"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		valuation := services.ComputeValuation(req.PhoneModel, req.PhoneCondition)
		return c.JSON(valuation)
	})

	app.Post("/trade/submit", func(c *fiber.Ctx) error {
		var req services.TradeInInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		hero, valuation, err := heroService.SubmitTradeIn(req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"hero":      hero,
			"valuation": valuation,
		})
	})
}
