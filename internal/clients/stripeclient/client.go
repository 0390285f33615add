// Package stripeclient forwards card payments and refunds to Stripe.
//
// Final amounts are already converted to the base currency, so intents and
// refunds are always denominated in USD; the caller's currency is kept in
// intent metadata. An intent is confirmed only when the payment metadata
// carries a Stripe payment method id; otherwise it is left unconfirmed for
// the client side to complete.
package stripeclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"payproc/internal/logging"
	"payproc/internal/models"
	"payproc/internal/services/currency"
	"payproc/internal/services/payment"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// Metadata keys read from posted records.
const (
	// MetaPaymentIntent names the intent to refund. When absent the intent
	// is looked up by transaction id.
	MetaPaymentIntent = "paymentIntent"
	// MetaPaymentMethod carries a Stripe payment method id used to confirm
	// the intent on creation.
	MetaPaymentMethod = "stripePaymentMethod"
)

// Intent metadata keys written to Stripe.
const (
	intentTransactionID    = "transaction_id"
	intentUserID           = "user_id"
	intentDiscountCode     = "discount_code"
	intentOriginalCurrency = "original_currency"
)

var (
	ErrUnsupportedRoute = errors.New("route not supported by stripe")
	ErrUnexpectedBody   = errors.New("unexpected body for route")
	ErrMissingIntent    = errors.New("refund has neither paymentIntent nor transaction id")
	ErrIntentNotFound   = errors.New("no payment intent for transaction")
)

type intentBackend interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Search(params *stripe.PaymentIntentSearchParams) *paymentintent.SearchIter
}

type refundCreator interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type Client struct {
	intents intentBackend
	refunds refundCreator
	logger  *slog.Logger
}

// New creates a client authenticated with secretKey.
func New(secretKey string, logger *slog.Logger) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return newWithBackends(sc.PaymentIntents, sc.Refunds, logger)
}

func newWithBackends(intents intentBackend, refunds refundCreator, logger *slog.Logger) *Client {
	return &Client{intents: intents, refunds: refunds, logger: logging.OrDiscard(logger)}
}

func (c *Client) Post(ctx context.Context, path string, body any) error {
	switch path {
	case payment.RouteFor(models.PaymentMethodCreditCard):
		tx, ok := body.(*models.Transaction)
		if !ok {
			return fmt.Errorf("%w %s: %T", ErrUnexpectedBody, path, body)
		}
		return c.createIntent(ctx, tx)
	case payment.RouteRefund:
		r, ok := body.(*models.Refund)
		if !ok {
			return fmt.Errorf("%w %s: %T", ErrUnexpectedBody, path, body)
		}
		return c.createRefund(ctx, r)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedRoute, path)
	}
}

func (c *Client) createIntent(ctx context.Context, tx *models.Transaction) error {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(tx.FinalAmount, currency.BaseCurrency)),
		Currency:           stripe.String(strings.ToLower(currency.BaseCurrency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	if pm := tx.Metadata[MetaPaymentMethod]; pm != "" {
		params.PaymentMethod = stripe.String(pm)
		params.Confirm = stripe.Bool(true)
	}
	params.Context = ctx
	params.SetIdempotencyKey(tx.ID)
	params.AddMetadata(intentTransactionID, tx.ID)
	params.AddMetadata(intentUserID, tx.UserID)
	params.AddMetadata(intentOriginalCurrency, tx.Currency)
	if tx.DiscountCode != nil {
		params.AddMetadata(intentDiscountCode, *tx.DiscountCode)
	}

	pi, err := c.intents.New(params)
	if err != nil {
		return fmt.Errorf("failed to create payment intent: %w", err)
	}
	c.logger.InfoContext(ctx, "stripe payment intent created",
		"transaction", tx.ID, "intent", pi.ID, "status", string(pi.Status))
	return nil
}

func (c *Client) createRefund(ctx context.Context, r *models.Refund) error {
	intent, err := c.resolveIntent(ctx, r)
	if err != nil {
		return err
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intent),
		Amount:        stripe.Int64(ToMinorUnits(r.NetAmount, currency.BaseCurrency)),
	}
	if reason, ok := refundReasons[r.Reason]; ok {
		params.Reason = stripe.String(reason)
	}
	params.Context = ctx
	params.SetIdempotencyKey(r.ID)
	params.AddMetadata(intentTransactionID, r.TransactionID)
	params.AddMetadata("reason", r.Reason)

	re, err := c.refunds.New(params)
	if err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}
	c.logger.InfoContext(ctx, "stripe refund created", "transaction", r.TransactionID, "refund", re.ID)
	return nil
}

// resolveIntent returns the intent named in the refund metadata, or searches
// for the intent created for the refunded transaction. Stripe search is
// eventually consistent, so a very recent intent may not be found yet.
func (c *Client) resolveIntent(ctx context.Context, r *models.Refund) (string, error) {
	if intent := r.Metadata[MetaPaymentIntent]; intent != "" {
		return intent, nil
	}
	if r.TransactionID == "" {
		return "", ErrMissingIntent
	}

	params := &stripe.PaymentIntentSearchParams{}
	params.Context = ctx
	params.Query = fmt.Sprintf("metadata['%s']:'%s'", intentTransactionID, strings.ReplaceAll(r.TransactionID, "'", `\'`))
	params.Limit = stripe.Int64(1)
	params.Single = true

	iter := c.intents.Search(params)
	if iter.Next() {
		return iter.PaymentIntent().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to search payment intents: %w", err)
	}
	return "", fmt.Errorf("%w %s", ErrIntentNotFound, r.TransactionID)
}

var refundReasons = map[string]string{
	"duplicate":             string(stripe.RefundReasonDuplicate),
	"fraudulent":            string(stripe.RefundReasonFraudulent),
	"requested_by_customer": string(stripe.RefundReasonRequestedByCustomer),
}

var zeroDecimal = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true,
	"KMF": true, "KRW": true, "MGA": true, "PYG": true, "RWF": true,
	"UGX": true, "VND": true, "VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// ToMinorUnits converts amount to the smallest unit of currency.
func ToMinorUnits(amount float64, currency string) int64 {
	if zeroDecimal[strings.ToUpper(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}
