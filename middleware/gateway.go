package middleware

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GatewayAuthMiddleware validates the shared Bearer token from the Gateway.
// All traffic — public site and admin surface alike — arrives through the
// gateway, so this runs globally.
func GatewayAuthMiddleware() fiber.Handler {
	expectedToken := os.Getenv("DELIWER_SERVICE_TOKEN")
	if expectedToken == "" {
		log.Fatal("❌ DELIWER_SERVICE_TOKEN is not set — service cannot authenticate Gateway")
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("X-Service-Token")
		if authHeader == "" {
			log.Printf("🚫 [GATEWAY_AUTH] Missing X-Service-Token header for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "gateway authentication token missing",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != expectedToken {
			log.Printf("❌ [GATEWAY_AUTH] Invalid service token for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid gateway authentication token",
			})
		}

		return c.Next()
	}
}
