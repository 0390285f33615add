package payment

import (
	"context"

	"payproc/internal/models"
)

// Service defines the payment service interface
type Service interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Transaction, error)
	RefundPayment(ctx context.Context, req models.RefundRequest) *models.Refund
}

// APIClient receives every transaction and refund record. Implementations
// own durability; the processor does not retry or roll back on failure.
type APIClient interface {
	Post(ctx context.Context, path string, body any) error
}

// Notifier sends the payment confirmation to the user.
type Notifier interface {
	SendConfirmation(ctx context.Context, userID string, amount float64, currency string) error
}

// AnalyticsSink records one event per processed payment.
type AnalyticsSink interface {
	Track(ctx context.Context, event models.AnalyticsEvent) error
}

// Routes posted to the API client.
const (
	RoutePrefix = "/payments/"
	RouteRefund = RoutePrefix + "refund"
)

// RouteFor returns the route a payment with method is posted to.
func RouteFor(method models.PaymentMethod) string {
	return RoutePrefix + string(method)
}
