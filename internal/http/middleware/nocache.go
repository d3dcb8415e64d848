package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as uncacheable. Dashboard and upload state change
// on a timer, so clients polling them must always hit the server.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
