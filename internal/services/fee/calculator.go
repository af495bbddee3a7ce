// Package fee computes itemized fee breakdowns for checkout payments.
package fee

import (
	"log/slog"

	"checkout/internal/logger"
	"checkout/internal/models"

	"github.com/shopspring/decimal"
)

// Calculator applies a FeeSchedule to payment amounts. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	schedule models.FeeSchedule
	log      *slog.Logger
}

func NewCalculator(schedule models.FeeSchedule, log *slog.Logger) *Calculator {
	if log == nil {
		log = logger.WithComponent("fee")
	}
	return &Calculator{
		schedule: schedule.Clone(),
		log:      log,
	}
}

// ComputeFees returns the fee breakdown for amount paid with method. An empty
// cryptoType means none was selected. A crypto payment without a known
// cryptoType, or an unknown method, is charged no fees. No rounding is
// applied.
func (c *Calculator) ComputeFees(amount decimal.Decimal, method models.PaymentMethod, cryptoType models.CryptoType) models.FeeBreakdown {
	processing := decimal.Zero
	network := decimal.Zero
	spread := decimal.Zero

	switch method {
	case models.PaymentMethodCrypto:
		if rate, ok := c.schedule.Crypto[cryptoType]; ok && cryptoType != "" {
			processing = amount.Mul(rate.ProcessingFeeRate)
			network = amount.Mul(rate.NetworkFeeRate)
			spread = amount.Mul(rate.SpreadRate)
		} else {
			c.log.Warn("crypto fee rate not found, charging no fees", "crypto_type", string(cryptoType))
		}
	case models.PaymentMethodCard:
		processing = amount.Mul(c.schedule.CardRate).Add(c.schedule.CardFixed)
	case models.PaymentMethodBank:
		processing = amount.Mul(c.schedule.BankRate).Add(c.schedule.BankFixed)
	}

	return models.FeeBreakdown{
		Subtotal:      amount,
		ProcessingFee: processing,
		NetworkFee:    positive(network),
		Spread:        positive(spread),
		Total:         amount.Add(processing).Add(network).Add(spread),
	}
}

// Schedule returns a copy of the rates in use.
func (c *Calculator) Schedule() models.FeeSchedule {
	return c.schedule.Clone()
}

func positive(d decimal.Decimal) *decimal.Decimal {
	if !d.IsPositive() {
		return nil
	}
	return &d
}
