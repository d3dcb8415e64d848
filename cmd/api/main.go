package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docdash/docs"
	"docdash/internal/clipboard"
	"docdash/internal/config"
	handlers "docdash/internal/http/handler"
	"docdash/internal/http/middleware"
	"docdash/internal/logging"
	"docdash/internal/metrics"
	"docdash/internal/model"
	"docdash/internal/otel"
	"docdash/internal/repository/memory"
	"docdash/internal/service"
	"docdash/internal/ticker"
	"docdash/internal/upload"
)

// @title Document Dashboard API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logging.New(cfg.ServiceName, cfg.Log.Level, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, logger)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	domainMetrics, err := metrics.NewDashboardMetrics(reg)
	if err != nil {
		logger.Fatal("failed to register domain metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	var seed []model.DocumentRecord
	if cfg.Dashboard.SeedSamples {
		seed = memory.SampleDocuments()
	}
	docRepo, err := memory.NewDocumentMemory(seed...)
	if err != nil {
		logger.Fatal("failed to seed document store", zap.Error(err))
	}
	domainMetrics.SetDocuments(docRepo.Len())

	status := ticker.New(
		ticker.WithInterval(cfg.Dashboard.TickerInterval()),
		ticker.WithOnToggle(domainMetrics.StatusToggled),
	)
	status.Start(ctx)

	dashSvc := service.NewDashboardService(docRepo, status, clipboard.NewMemory(), logger)
	uploadSvc := service.NewUploadService(docRepo,
		service.WithSimulatorOptions(upload.WithDelay(cfg.Upload.Delay())),
		service.WithMetrics(domainMetrics),
		service.WithLogger(logger),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: !cfg.Log.Debug,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.Logger(logger))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, handlers.Deps{
		Dashboard: dashSvc,
		Uploads:   uploadSvc,
		Ready:     status,
		Wallet:    model.NewWallet(cfg.Dashboard.WalletAddress),
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		addr := ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr), zap.String("host", cfg.AppHost))
		if err := app.Listen(addr); err != nil {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	uploadSvc.Shutdown()
	status.Stop()

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing shutdown", zap.Error(err))
	}
}
