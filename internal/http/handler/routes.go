package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/http/middleware"
	"docdash/internal/model"
	"docdash/internal/service"
)

// Deps bundles what the routes need.
type Deps struct {
	Dashboard service.DashboardService
	Uploads   service.UploadService
	Ready     Readiness
	Wallet    model.Wallet
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Ready))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(d.Dashboard))
	docs.Get("/:id", GetDocument(d.Dashboard))

	dash := app.Group("/dashboard", middleware.NoStore())
	dash.Get("/", GetDashboard(d.Dashboard, d.Wallet))
	dash.Get("/stats", GetStats(d.Dashboard))
	dash.Get("/status", GetStatus(d.Dashboard))
	dash.Post("/clipboard", CopyToClipboard(d.Dashboard))
	dash.Get("/wallet", func(c *fiber.Ctx) error { return c.JSON(d.Wallet) })
	dash.Post("/wallet/copy", CopyWallet(d.Dashboard, d.Wallet))

	up := app.Group("/uploads", middleware.NoStore())
	up.Post("/", OpenUpload(d.Uploads))
	up.Get("/:id", GetUpload(d.Uploads))
	up.Delete("/:id", CloseUpload(d.Uploads))
	up.Put("/:id/file", SelectUploadFile(d.Uploads))
	up.Put("/:id/summary", SetUploadSummary(d.Uploads))
	up.Post("/:id/start", StartUpload(d.Uploads))
	up.Post("/:id/cancel", CancelUpload(d.Uploads))
}
