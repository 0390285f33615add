// Package routes defines the API routing configuration.
package routes

import (
	"log/slog"

	"payproc/internal/handlers"
	"payproc/internal/middleware"
	"payproc/internal/models"
	"payproc/internal/services/payment"

	"github.com/gofiber/fiber/v2"
)

// Dependencies holds what the routes need to build their handlers.
type Dependencies struct {
	Payments     payment.Service
	JWTSecret    string
	Version      string
	HealthChecks map[string]handlers.HealthCheckFunc
	Logger       *slog.Logger
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	health := handlers.NewHealthHandler(deps.Version, deps.HealthChecks)
	app.Get("/health", health.HealthCheck)

	auth := middleware.NewAuthMiddleware(deps.JWTSecret, deps.Logger)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments)

	api := app.Group("/api", auth.Handler)
	api.Post("/payments", middleware.HasPermission(models.PermissionPaymentWrite), paymentHandler.ProcessPayment)
	api.Post("/refunds", middleware.HasPermission(models.PermissionRefundWrite), paymentHandler.RefundPayment)
}
