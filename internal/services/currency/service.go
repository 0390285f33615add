// Package currency converts amounts into the display currency.
package currency

const (
	// BaseCurrency is never converted.
	BaseCurrency = "USD"
	DefaultRate  = 1.2
)

// Service applies one fixed rate to every non-base currency.
type Service struct {
	rate float64
}

func NewService(rate float64) *Service {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Service{rate: rate}
}

// Convert returns amount unchanged for USD and amount times the rate otherwise.
func (s *Service) Convert(amount float64, code string) float64 {
	if code == BaseCurrency {
		return amount
	}
	return amount * s.rate
}

// Rate reports the rate applied to non-base currencies.
func (s *Service) Rate() float64 {
	return s.rate
}
