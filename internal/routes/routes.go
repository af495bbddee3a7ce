// Package routes defines the API routing configuration.
// It wires handlers to their paths and puts the bearer-token middleware in
// front of everything that needs a signed-in user.
package routes

import (
	"checkout/internal/handlers"
	"checkout/internal/middleware"
	"checkout/internal/services/auth"
	"checkout/internal/services/dashboard"
	"checkout/internal/services/payment"

	"github.com/gofiber/fiber/v2"
)

// Dependencies holds the services the routes are served by.
type Dependencies struct {
	Auth      auth.Service
	Payments  payment.Service
	Dashboard dashboard.Service
	Prices    handlers.PriceProvider
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	cryptoHandler := handlers.NewCryptoHandler(deps.Prices)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	transactionHandler := handlers.NewTransactionHandler(deps.Payments)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.Login)
	api.Post("/login/:provider", authHandler.LoginWithProvider)
	api.Post("/register", authHandler.Register)

	crypto := api.Group("/crypto")
	crypto.Get("/prices", cryptoHandler.GetPrices)
	crypto.Get("/convert", cryptoHandler.Convert)

	api.Post("/fees/quote", paymentHandler.QuoteFees)

	authMiddleware := middleware.NewAuthMiddleware(deps.Auth)
	protected := api.Group("", authMiddleware.Handler)

	setupAccountRoutes(protected, authHandler)
	setupPaymentRoutes(protected, paymentHandler, transactionHandler)
	setupDashboardRoutes(protected, dashboardHandler)
}

func setupAccountRoutes(router fiber.Router, h *handlers.AuthHandler) {
	router.Post("/logout", h.Logout)
	router.Get("/me", h.Me)
}

func setupPaymentRoutes(router fiber.Router, paymentHandler *handlers.PaymentHandler, transactionHandler *handlers.TransactionHandler) {
	checkout := router.Group("/checkout")
	checkout.Post("/", paymentHandler.CreateCheckout)
	checkout.Get("/:id", paymentHandler.GetCheckout)

	router.Post("/payments", paymentHandler.ProcessPayment)

	transactions := router.Group("/transactions")
	transactions.Get("/", transactionHandler.GetUserTransactions)
	transactions.Get("/:id", transactionHandler.GetTransaction)
}

func setupDashboardRoutes(router fiber.Router, h *handlers.DashboardHandler) {
	dashboard := router.Group("/dashboard")
	dashboard.Get("/stats", h.GetMerchantStats)
	dashboard.Get("/transactions", h.GetRecentTransactions)
}
