// Package main is the entry point for the checkout API server.
// It builds the services on top of in-memory storage, seeds a mock
// transaction history and serves the HTTP API until interrupted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout/internal/config"
	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/repositories"
	"checkout/internal/routes"
	"checkout/internal/services/auth"
	"checkout/internal/services/converter"
	"checkout/internal/services/dashboard"
	"checkout/internal/services/fee"
	"checkout/internal/services/mockdata"
	"checkout/internal/services/notification"
	"checkout/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	log := logger.Init(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Error("JWT_SECRET must be set in production")
		os.Exit(1)
	}

	// Static tables
	calculator := fee.NewCalculator(models.DefaultFeeSchedule(), nil)
	prices := converter.NewConverter(models.DefaultPriceTable(time.Now()))

	// Storage
	userRepo := repositories.NewUserRepository()
	transactionRepo := repositories.NewTransactionRepository()
	checkoutRepo := repositories.NewCheckoutRepository()

	// Services
	authService := auth.NewService(userRepo, auth.Config{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		LoginDelay: cfg.LoginDelay,
		OAuthDelay: cfg.OAuthDelay,
	}, nil)

	paymentService := payment.NewService(
		transactionRepo,
		checkoutRepo,
		calculator,
		prices,
		mockdata.NewGenerator(calculator, cfg.MockSeed),
		notification.NewService(nil),
		payment.Config{ProcessingDelay: cfg.PaymentDelay},
		nil,
	)

	seeded, err := paymentService.SeedMockTransactions(context.Background(), cfg.MockTransactionCount)
	if err != nil {
		log.Error("failed to seed mock transactions", "error", err)
		os.Exit(1)
	}
	log.Info("mock transactions seeded", "count", seeded)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "checkout",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/register", newRateLimiter())
	app.Use("/api/login", newRateLimiter())

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		Auth:      authService,
		Payments:  paymentService,
		Dashboard: dashboard.NewService(transactionRepo),
		Prices:    prices,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := shutdown(app, log); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}

func shutdown(app *fiber.App, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Debug("http server drained")
	return nil
}
