/*
Package payment orchestrates payments and refunds.

A payment runs through a fixed pipeline:
- metadata validation for the payment method (fails fast)
- an optional advisory fraud check
- discount, then currency conversion
- posting the transaction to the API client
- confirmation and analytics side effects

Usage:

	p := payment.NewProcessor(payment.ProcessorConfig{
	    Client:    client,
	    Notifier:  notifier,
	    Analytics: analytics,
	    Logger:    logger,
	})

	tx, err := p.ProcessPayment(ctx, models.PaymentRequest{
	    Amount:          100,
	    Currency:        "EUR",
	    UserID:          "u1",
	    PaymentMethod:   models.PaymentMethodCreditCard,
	    Metadata:        models.Metadata{"cardNumber": "4242", "expiry": "12/25"},
	    DiscountCode:    "SUMMER20",
	    FraudCheckLevel: 1,
	})

	refund := p.RefundPayment(ctx, models.RefundRequest{
	    TransactionID: tx.ID,
	    UserID:        "u1",
	    Reason:        "duplicate",
	    Amount:        100,
	    Currency:      "EUR",
	})

Routes:

Transactions are posted to /payments/{method} and refunds to /payments/refund.
The API client's result never changes the returned record; failures are logged.

Error Handling:

- ErrInvalidCardMetadata: credit_card without cardNumber or expiry
- ErrInvalidPayPalMetadata: paypal without paypalAccount
- ErrUnsupportedMethod: any other payment method

Both metadata errors match errors.Is(err, errors.ErrInvalidMetadata).
*/
package payment
