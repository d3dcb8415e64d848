package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/model"
	"docdash/internal/service"
)

type clipboardRequest struct {
	Text string `json:"text"`
}

// GetDashboard godoc
// @Summary Dashboard view
// @Description Stat cards, processing indicator and every document record.
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Dashboard
// @Router /dashboard [get]
func GetDashboard(svc service.DashboardService, wallet model.Wallet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Dashboard(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		d.Wallet = wallet
		return c.JSON(d)
	}
}

// GetStats godoc
// @Summary Stat cards only
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Router /dashboard/stats [get]
func GetStats(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}

// GetStatus godoc
// @Summary Processing indicator
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /dashboard/status [get]
func GetStatus(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"processing": svc.Processing()})
	}
}

// CopyToClipboard godoc
// @Summary Copy text to the clipboard
// @Description Always answers 204; copy failures are not reported.
// @Tags dashboard
// @Accept json
// @Param body body clipboardRequest true "text to copy"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /dashboard/clipboard [post]
func CopyToClipboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req clipboardRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		svc.Copy(req.Text)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CopyWallet godoc
// @Summary Copy the wallet address to the clipboard
// @Tags dashboard
// @Success 204
// @Router /dashboard/wallet/copy [post]
func CopyWallet(svc service.DashboardService, wallet model.Wallet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.Copy(wallet.Address)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
