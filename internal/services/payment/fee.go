package payment

// DefaultRefundFeePercent is withheld from every refund.
const DefaultRefundFeePercent = 0.05

type FeeCalculator struct {
	percent float64
}

func NewFeeCalculator(percent float64) *FeeCalculator {
	if percent < 0 || percent >= 1 {
		percent = DefaultRefundFeePercent
	}
	return &FeeCalculator{percent: percent}
}

// CalculateFee returns the refund fee withheld from amount.
func (f *FeeCalculator) CalculateFee(amount float64) float64 {
	return amount * f.percent
}
