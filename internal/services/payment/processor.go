package payment

import (
	"context"
	"log/slog"
	"time"

	"payproc/internal/logging"
	"payproc/internal/models"
	"payproc/internal/services/currency"
	"payproc/internal/services/discount"
	"payproc/internal/services/fraud"
	"payproc/internal/services/notification"

	"github.com/google/uuid"
)

// ProcessorConfig wires a Processor. Client is required; every other field
// falls back to the built-in tables and log-only collaborators.
type ProcessorConfig struct {
	Client    APIClient
	Notifier  Notifier
	Analytics AnalyticsSink
	Validator *Validator
	Discounts *discount.Service
	Currency  *currency.Service
	Fraud     *fraud.Checker
	Fees      *FeeCalculator
	Logger    *slog.Logger

	Now   func() time.Time
	NewID func() string
}

// Processor runs the payment and refund pipelines. It holds no mutable
// state and is safe for concurrent use.
type Processor struct {
	client    APIClient
	notifier  Notifier
	analytics AnalyticsSink
	validator *Validator
	discounts *discount.Service
	currency  *currency.Service
	fraud     *fraud.Checker
	fees      *FeeCalculator
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

var _ Service = (*Processor)(nil)

func NewProcessor(config ProcessorConfig) *Processor {
	if config.Client == nil {
		panic("api client is required")
	}

	p := &Processor{
		client:    config.Client,
		notifier:  config.Notifier,
		analytics: config.Analytics,
		validator: config.Validator,
		discounts: config.Discounts,
		currency:  config.Currency,
		fraud:     config.Fraud,
		fees:      config.Fees,
		logger:    logging.OrDiscard(config.Logger),
		now:       config.Now,
		newID:     config.NewID,
	}

	if p.validator == nil {
		p.validator = NewValidator()
	}
	if p.discounts == nil {
		p.discounts = discount.NewService(nil, p.logger)
	}
	if p.currency == nil {
		p.currency = currency.NewService(currency.DefaultRate)
	}
	if p.fraud == nil {
		p.fraud = fraud.NewChecker(fraud.DefaultThresholds(), p.logger)
	}
	if p.fees == nil {
		p.fees = NewFeeCalculator(DefaultRefundFeePercent)
	}
	if p.notifier == nil {
		p.notifier = notification.NewService(p.logger)
	}
	if p.analytics == nil {
		p.analytics = notification.NewAnalyticsLogger(p.logger)
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newID == nil {
		p.newID = uuid.NewString
	}
	return p
}

// ProcessPayment validates, prices and posts a payment. Validation errors
// are returned before anything is built or posted.
func (p *Processor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Transaction, error) {
	if err := p.validator.Validate(req.PaymentMethod, req.Metadata); err != nil {
		return nil, err
	}

	if req.FraudCheckLevel > 0 {
		p.fraud.Check(req.Amount, req.UserID)
	}

	finalAmount := p.discounts.Apply(req.Amount, req.DiscountCode)
	finalAmount = p.currency.Convert(finalAmount, req.Currency)

	tx := &models.Transaction{
		ID:             p.newID(),
		UserID:         req.UserID,
		OriginalAmount: req.Amount,
		FinalAmount:    finalAmount,
		Currency:       req.Currency,
		PaymentMethod:  req.PaymentMethod,
		Metadata:       req.Metadata.Clone(),
		FraudChecked:   req.FraudCheckLevel,
		Timestamp:      models.FormatTimestamp(p.now()),
	}
	if req.DiscountCode != "" {
		code := req.DiscountCode
		tx.DiscountCode = &code
	}

	p.post(ctx, RouteFor(req.PaymentMethod), tx)
	p.logger.Info("payment sent to api",
		"id", tx.ID, "user", tx.UserID, "method", string(tx.PaymentMethod),
		"final_amount", tx.FinalAmount, "currency", tx.Currency)

	if err := p.notifier.SendConfirmation(ctx, tx.UserID, tx.FinalAmount, tx.Currency); err != nil {
		p.logger.Warn("confirmation not sent", "id", tx.ID, "error", err)
	}
	event := models.AnalyticsEvent{
		UserID:   tx.UserID,
		Amount:   tx.FinalAmount,
		Currency: tx.Currency,
		Method:   tx.PaymentMethod,
	}
	if err := p.analytics.Track(ctx, event); err != nil {
		p.logger.Warn("analytics event dropped", "id", tx.ID, "error", err)
	}

	return tx, nil
}

// RefundPayment withholds the refund fee and posts the refund. It performs
// no validation and never fails.
func (p *Processor) RefundPayment(ctx context.Context, req models.RefundRequest) *models.Refund {
	fee := p.fees.CalculateFee(req.Amount)

	refund := &models.Refund{
		ID:            p.newID(),
		TransactionID: req.TransactionID,
		UserID:        req.UserID,
		Reason:        req.Reason,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      req.Metadata.Clone(),
		NetAmount:     req.Amount - fee,
		Date:          models.FormatTimestamp(p.now()),
	}

	p.post(ctx, RouteRefund, refund)
	p.logger.Info("refund processed",
		"id", refund.ID, "transaction", refund.TransactionID,
		"amount", refund.Amount, "net_amount", refund.NetAmount, "currency", refund.Currency)

	return refund
}

// post forwards body to the API client. The outcome does not affect the
// record returned to the caller; failures are only logged.
func (p *Processor) post(ctx context.Context, path string, body any) {
	if err := p.client.Post(ctx, path, body); err != nil {
		p.logger.Error("api post failed", "path", path, "error", err)
	}
}
