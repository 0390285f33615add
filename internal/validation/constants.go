package validation

const (
	// Amount limits
	MinTransactionAmount = 0.01
	MaxTransactionAmount = 1000000.00

	// String lengths
	CurrencyCodeLength = 3
	MaxReasonLength    = 500
	MaxReferenceLength = 100
)
