package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-erp-admin/internal/config"
	"go-erp-admin/internal/fixture"
	"go-erp-admin/internal/handler"
	"go-erp-admin/internal/middleware"
	"go-erp-admin/internal/repository"
	"go-erp-admin/internal/service"
	"go-erp-admin/internal/ws"
	"go-erp-admin/pkg/database"
	"go-erp-admin/pkg/jwt"
	"go-erp-admin/pkg/latency"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if err := cfg.SetupLogging(); err != nil {
		log.WithError(err).Fatal("invalid logging configuration")
	}

	// 2. Open a fresh, seeded record store
	ctx := context.Background()
	db, err := fixture.Open(ctx, database.Options{DSN: cfg.DatabaseDSN, LogSQL: cfg.DBLog})
	if err != nil {
		log.WithError(err).Fatal("could not open record store")
	}
	log.WithField("dsn", cfg.DatabaseDSN).Info("✅ record store seeded")

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	rt := service.Runtime{
		Latency:  latency.New(cfg.LatencyRead, cfg.LatencyWrite, cfg.LatencyTransition),
		Notifier: wsHub,
	}
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	customerRepo := repository.NewCustomerRepo(db)
	productRepo := repository.NewProductRepo(db)
	catalog := service.NewCatalog(
		repository.NewCategoryRepo(db),
		repository.NewUnitRepo(db),
		repository.NewWarehouseRepo(db),
		repository.NewLocationRepo(db),
		productRepo,
	)

	customerService := service.NewCustomerService(customerRepo, rt)
	productService := service.NewProductService(catalog, rt)
	purchaseService := service.NewPurchaseService(repository.NewPurchaseRepo(db), rt)
	salesService := service.NewSalesService(repository.NewSalesRepo(db), customerRepo, productRepo, rt)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(repository.NewUserRepo(db), tokens, cfg.SMSCode, rt)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(repository.NewDashboardRepo(db), rt)),
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(service.NewCategoryService(catalog, rt)),
		Unit:      handler.NewUnitHandler(service.NewUnitService(catalog, rt)),
		Warehouse: handler.NewWarehouseHandler(service.NewWarehouseService(catalog, rt)),
		Location:  handler.NewLocationHandler(service.NewLocationService(catalog, rt)),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Sales:     handler.NewSalesHandler(salesService),
		Export:    handler.NewExportHandler(service.NewExportService(customerService, productService, purchaseService, salesService)),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "ERP Admin API v1.0",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: log.StandardLogger().Writer(),
	}))
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	requireAuth := middleware.RequireAuth(tokens)
	if cfg.AuthDisabled {
		log.Warn("AUTH_DISABLED is set, /api routes are open")
		requireAuth = middleware.Passthrough()
	}
	handler.RegisterRoutes(app, handlers, requireAuth)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Panic("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}
	wsHub.Stop()

	log.Info("Server exited")
}
