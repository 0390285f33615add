// Package notification holds the log-backed confirmation and analytics
// collaborators used when no real provider is configured.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"payproc/internal/logging"
	"payproc/internal/models"
)

// Service is a minimal notification service implementation.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logging.OrDiscard(logger)}
}

// SendConfirmation logs the confirmation email for a payment.
func (s *Service) SendConfirmation(ctx context.Context, userID string, amount float64, currency string) error {
	s.logger.InfoContext(ctx, "confirmation email",
		"to", userID,
		"body", fmt.Sprintf("Your payment of %v %s was successful", amount, currency))
	return nil
}

// AnalyticsLogger logs analytics events.
type AnalyticsLogger struct {
	logger *slog.Logger
}

func NewAnalyticsLogger(logger *slog.Logger) *AnalyticsLogger {
	return &AnalyticsLogger{logger: logging.OrDiscard(logger)}
}

func (a *AnalyticsLogger) Track(ctx context.Context, event models.AnalyticsEvent) error {
	a.logger.InfoContext(ctx, "analytics event",
		"user", event.UserID,
		"amount", event.Amount,
		"currency", event.Currency,
		"method", string(event.Method))
	return nil
}
