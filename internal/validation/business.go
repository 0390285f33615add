package validation

import (
	"payproc/internal/models"
)

// Payment validates the shape of a payment request. Method-specific
// metadata rules are enforced by the payment service.
func (v *Validator) Payment(req *models.PaymentRequest) {
	v.Range("amount", req.Amount, MinTransactionAmount, MaxTransactionAmount)
	v.currency(req.Currency)
	v.Required("paymentMethod", string(req.PaymentMethod))
	v.MaxLength("discountCode", req.DiscountCode, MaxReferenceLength)
	v.Check(req.FraudCheckLevel >= 0, "fraudCheckLevel", "must not be negative")
}

// Refund validates the shape of a refund request.
func (v *Validator) Refund(req *models.RefundRequest) {
	v.Required("transactionId", req.TransactionID)
	v.MaxLength("transactionId", req.TransactionID, MaxReferenceLength)
	v.Range("amount", req.Amount, MinTransactionAmount, MaxTransactionAmount)
	v.currency(req.Currency)
	v.MaxLength("reason", req.Reason, MaxReasonLength)
}

func (v *Validator) currency(code string) {
	v.Required("currency", code)
	v.Check(len(code) == CurrencyCodeLength, "currency", "must be a 3-letter ISO code")
}
