package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminContextMiddleware stashes the bearer assertion and shop domain from
// the request so handlers can thread them into explicit Authorize calls.
// It never authorizes by itself — every gated operation does its own check
// so authorization stays testable in isolation.
func AdminContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == c.Get("Authorization") {
			token = ""
		}
		c.Locals("auth_token", token)
		c.Locals("shop_domain", c.Get("X-Shop-Domain"))
		return c.Next()
	}
}

// AuthToken reads the stashed bearer assertion, empty when absent.
func AuthToken(c *fiber.Ctx) string {
	token, _ := c.Locals("auth_token").(string)
	return token
}

// ShopDomain reads the stashed shop domain header, empty when absent.
func ShopDomain(c *fiber.Ctx) string {
	domain, _ := c.Locals("shop_domain").(string)
	return domain
}
