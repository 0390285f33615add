package models

// AnalyticsEvent is emitted once per processed payment.
type AnalyticsEvent struct {
	UserID   string        `json:"userId"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Method   PaymentMethod `json:"method"`
}
