package models

import (
	"time"
)

// TimestampLayout is the ISO-8601 layout used for record times.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Transaction is the record produced by a processed payment.
type Transaction struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	OriginalAmount float64       `json:"originalAmount"`
	FinalAmount    float64       `json:"finalAmount"`
	Currency       string        `json:"currency"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Metadata       Metadata      `json:"metadata"`
	DiscountCode   *string       `json:"discountCode"`
	FraudChecked   int           `json:"fraudChecked"`
	Timestamp      string        `json:"timestamp"`
}

// Refund is the record produced by a refund.
type Refund struct {
	ID            string   `json:"id"`
	TransactionID string   `json:"transactionId"`
	UserID        string   `json:"userId"`
	Reason        string   `json:"reason"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	Metadata      Metadata `json:"metadata"`
	NetAmount     float64  `json:"netAmount"`
	Date          string   `json:"date"`
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
