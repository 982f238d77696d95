package handlers

import (
	"deliwer-loyalty-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupKitRoutes wires the AquaCafe kit catalog and Shopify checkout links.
func SetupKitRoutes(app *fiber.App, kitService *services.KitService) {
	app.Get("/kits", func(c *fiber.Ctx) error {
		kits, err := kitService.ListKits()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(kits)
	})

	app.Get("/kits/:slug", func(c *fiber.Ctx) error {
		kit, err := kitService.GetKit(c.Params("slug"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(kit)
	})

	app.Post("/kits/:slug/checkout", func(c *fiber.Ctx) error {
		var req struct {
			Quantity     int    `json:"quantity"`
			ReferralCode string `json:"referral_code,omitempty"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		link, err := kitService.CheckoutLink(c.Params("slug"), req.Quantity, req.ReferralCode)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"checkout_url": link})
	})
}
