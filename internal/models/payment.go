package models

// PaymentMethod identifies how a payment is funded.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// Metadata keys required per payment method.
const (
	MetaCardNumber    = "cardNumber"
	MetaExpiry        = "expiry"
	MetaPayPalAccount = "paypalAccount"
)

// PaymentRequest carries the inputs of a single payment.
type PaymentRequest struct {
	Amount          float64       `json:"amount" validate:"required,gt=0"`
	Currency        string        `json:"currency" validate:"required"`
	UserID          string        `json:"userId"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"required"`
	Metadata        Metadata      `json:"metadata"`
	DiscountCode    string        `json:"discountCode,omitempty"`
	FraudCheckLevel int           `json:"fraudCheckLevel"`
}

// RefundRequest carries the inputs of a refund.
type RefundRequest struct {
	TransactionID string   `json:"transactionId" validate:"required"`
	UserID        string   `json:"userId"`
	Reason        string   `json:"reason"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	Currency      string   `json:"currency" validate:"required"`
	Metadata      Metadata `json:"metadata"`
}
