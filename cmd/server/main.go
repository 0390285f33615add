// Package main is the entry point for the payments API.
// It loads configuration, builds the API client selected by API_CLIENT,
// wires the payment processor and starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payproc/internal/clients/httpclient"
	"payproc/internal/clients/ledger"
	"payproc/internal/clients/logclient"
	"payproc/internal/clients/stripeclient"
	"payproc/internal/config"
	"payproc/internal/handlers"
	"payproc/internal/logging"
	"payproc/internal/repositories"
	"payproc/internal/repositories/cache"
	"payproc/internal/routes"
	"payproc/internal/services/currency"
	"payproc/internal/services/discount"
	"payproc/internal/services/fraud"
	"payproc/internal/services/notification"
	"payproc/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const version = "1.0.0"

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := logging.New(cfg.Logging)
	checks := map[string]handlers.HealthCheckFunc{}

	client, closeClient, err := buildClient(cfg, logger, checks)
	if err != nil {
		log.Fatalf("Failed to build API client: %v", err)
	}
	defer closeClient()

	var analytics payment.AnalyticsSink = notification.NewAnalyticsLogger(logger)
	if cfg.Redis.Analytics {
		redisClient := cache.NewRedisClient(cfg.Redis)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("failed to close redis", "error", err)
			}
		}()
		checks["redis"] = func(ctx context.Context) error { return cache.HealthCheck(ctx, redisClient) }
		analytics = cache.NewAnalyticsStream(redisClient, cfg.Redis.StreamKey)
	}

	processor := payment.NewProcessor(payment.ProcessorConfig{
		Client:    client,
		Notifier:  notification.NewService(logger),
		Analytics: analytics,
		Discounts: discount.NewService(discount.DefaultCodes(), logger),
		Currency:  currency.NewService(cfg.Pricing.CurrencyRate),
		Fraud: fraud.NewChecker(fraud.Thresholds{
			FraudLimit:     cfg.Pricing.FraudLimit,
			LightRiskLimit: cfg.Pricing.LightRiskLimit,
			HeavyRiskLimit: cfg.Pricing.HeavyRiskLimit,
		}, logger),
		Fees:   payment.NewFeeCalculator(cfg.Pricing.RefundFeePercent),
		Logger: logger,
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: config.IsProduction()})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Payments:     processor,
		JWTSecret:    cfg.Auth.JWTSecret,
		Version:      version,
		HealthChecks: checks,
		Logger:       logger,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("starting payments api", "port", cfg.HTTP.Port, "client", cfg.Client.Kind)
	if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

// buildClient returns the configured API client and its cleanup function.
func buildClient(cfg config.Config, logger *slog.Logger, checks map[string]handlers.HealthCheckFunc) (payment.APIClient, func(), error) {
	noop := func() {}

	switch cfg.Client.Kind {
	case config.ClientHTTP:
		return httpclient.New(httpclient.Config{
			BaseURL: cfg.Client.BaseURL,
			APIKey:  cfg.Client.APIKey,
			Timeout: cfg.Client.Timeout,
		}), noop, nil
	case config.ClientStripe:
		return stripeclient.New(cfg.Client.StripeKey, logger), noop, nil
	case config.ClientLedger:
		db, err := repositories.InitDB(cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		closeDB := func() {
			if err := repositories.CloseDB(db); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}
		return ledger.New(repositories.NewLedgerRepository(db), cfg.Client.FingerprintKey), closeDB, nil
	default:
		return logclient.New(logger), noop, nil
	}
}
