package controller

import "github.com/gofiber/fiber/v2"

// Health handles GET /api/health. Returned bare, without the envelope,
// for load-balancer compatibility.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
