package models

import "time"

// Ledger entry kinds
const (
	LedgerKindPayment = "payment"
	LedgerKindRefund  = "refund"
)

// LedgerEntry is the persisted form of a posted transaction or refund.
type LedgerEntry struct {
	ID            uint    `gorm:"primarykey"`
	Kind          string  `gorm:"not null;index"`
	RecordID      string  `gorm:"not null;uniqueIndex"`
	Reference     string  `gorm:"index"` // original transaction for refunds
	UserID        string  `gorm:"not null;index"`
	Amount        float64 `gorm:"not null"`
	NetAmount     float64 `gorm:"not null"`
	Currency      string  `gorm:"not null;default:'USD'"`
	PaymentMethod string  // empty for refunds
	DiscountCode  string
	Reason        string
	Metadata      Metadata `gorm:"type:jsonb"`
	RecordedAt    time.Time
	CreatedAt     time.Time
}
