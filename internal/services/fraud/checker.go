// Package fraud classifies payment risk by amount. The classification is
// advisory: it is logged and never blocks a payment.
package fraud

import (
	"log/slog"

	"payproc/internal/logging"
)

// RiskLevel is the advisory classification of a payment.
type RiskLevel string

const (
	RiskVeryLow RiskLevel = "very low risk"
	RiskLow     RiskLevel = "low risk"
	RiskMedium  RiskLevel = "medium risk"
	RiskHigh    RiskLevel = "high risk"
)

// Thresholds split amounts into the light and heavy check paths.
type Thresholds struct {
	FraudLimit     float64 // below: light check
	LightRiskLimit float64 // light path: below is very low risk
	HeavyRiskLimit float64 // heavy path: below is medium risk
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		FraudLimit:     100,
		LightRiskLimit: 10,
		HeavyRiskLimit: 1000,
	}
}

type Checker struct {
	limits Thresholds
	logger *slog.Logger
}

func NewChecker(limits Thresholds, logger *slog.Logger) *Checker {
	return &Checker{limits: limits, logger: logging.OrDiscard(logger)}
}

// Check logs and returns the risk level of amount for userID.
func (c *Checker) Check(amount float64, userID string) RiskLevel {
	if amount < c.limits.FraudLimit {
		return c.lightCheck(userID, amount)
	}
	return c.heavyCheck(userID, amount)
}

func (c *Checker) lightCheck(userID string, amount float64) RiskLevel {
	level := RiskLow
	if amount < c.limits.LightRiskLimit {
		level = RiskVeryLow
	}
	c.logger.Info("light fraud check", "user", userID, "amount", amount, "risk", string(level))
	return level
}

func (c *Checker) heavyCheck(userID string, amount float64) RiskLevel {
	level := RiskHigh
	if amount < c.limits.HeavyRiskLimit {
		level = RiskMedium
	}
	c.logger.Info("heavy fraud check", "user", userID, "amount", amount, "risk", string(level))
	return level
}
