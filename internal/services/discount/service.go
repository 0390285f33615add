// Package discount maps discount codes to reduced amounts.
package discount

import (
	"log/slog"

	"payproc/internal/logging"
)

// Codes holds discount values keyed by code. A value below 1 is a fraction
// off the amount, anything else is a flat amount off.
//
// A flat discount below one currency unit cannot be expressed and would be
// read as a percentage. Fixing that needs an explicit kind per code.
type Codes map[string]float64

// DefaultCodes returns the built-in discount table.
func DefaultCodes() Codes {
	return Codes{
		"SUMMER20":  0.2,
		"WELCOME10": 10,
	}
}

type Service struct {
	codes  Codes
	logger *slog.Logger
}

// NewService creates a discount service. A nil codes table uses DefaultCodes.
func NewService(codes Codes, logger *slog.Logger) *Service {
	if codes == nil {
		codes = DefaultCodes()
	}
	table := make(Codes, len(codes))
	for k, v := range codes {
		table[k] = v
	}
	return &Service{codes: table, logger: logging.OrDiscard(logger)}
}

// Apply returns amount reduced by code. Empty and unknown codes leave
// amount unchanged; unknown codes are logged but are not an error.
func (s *Service) Apply(amount float64, code string) float64 {
	if code == "" {
		return amount
	}

	value, ok := s.codes[code]
	if !ok {
		s.logger.Info("unknown discount code", "code", code)
		return amount
	}

	if value < 1 {
		return amount * (1 - value)
	}
	return amount - value
}
