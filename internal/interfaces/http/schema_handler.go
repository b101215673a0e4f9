package http

import (
	"github.com/gofiber/fiber/v2"
)

// SchemaHandler GET /api/schema: script SQL del esquema para crear la base a mano.
func SchemaHandler(schema string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(schema)
	}
}
