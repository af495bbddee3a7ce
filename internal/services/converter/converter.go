// Package converter converts between USD and crypto amounts using a static
// price table.
package converter

import (
	"checkout/internal/models"

	"github.com/shopspring/decimal"
)

// Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	prices models.PriceTable
}

func NewConverter(prices models.PriceTable) *Converter {
	return &Converter{prices: prices.Clone()}
}

// ToCrypto returns how many units of symbol usdAmount buys. It returns zero
// for an unknown symbol or a non-positive configured price.
func (c *Converter) ToCrypto(usdAmount decimal.Decimal, symbol models.CryptoType) decimal.Decimal {
	price, ok := c.unitPrice(symbol)
	if !ok {
		return decimal.Zero
	}
	return usdAmount.Div(price)
}

// ToUSD returns the USD value of cryptoAmount units of symbol, or zero for an
// unknown symbol.
func (c *Converter) ToUSD(cryptoAmount decimal.Decimal, symbol models.CryptoType) decimal.Decimal {
	price, ok := c.unitPrice(symbol)
	if !ok {
		return decimal.Zero
	}
	return cryptoAmount.Mul(price)
}

func (c *Converter) Price(symbol models.CryptoType) (models.CryptoPrice, bool) {
	p, ok := c.prices[symbol]
	return p, ok
}

// Prices returns the known prices in models.CryptoTypes order, followed by
// any additional symbols the table was built with.
func (c *Converter) Prices() []models.CryptoPrice {
	out := make([]models.CryptoPrice, 0, len(c.prices))
	seen := make(map[models.CryptoType]bool, len(c.prices))
	for _, sym := range models.CryptoTypes {
		if p, ok := c.prices[sym]; ok {
			out = append(out, p)
			seen[sym] = true
		}
	}
	for sym, p := range c.prices {
		if !seen[sym] {
			out = append(out, p)
		}
	}
	return out
}

func (c *Converter) unitPrice(symbol models.CryptoType) (decimal.Decimal, bool) {
	p, ok := c.prices[symbol]
	if !ok || !p.Price.IsPositive() {
		return decimal.Zero, false
	}
	return p.Price, true
}
