package handler

import "github.com/gofiber/fiber/v2"

// Readiness reports whether background workers are up.
type Readiness interface {
	Running() bool
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Healthy while the status ticker is running.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(r Readiness) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r == nil || !r.Running() {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "status ticker not running")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
