package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CryptoPrice struct {
	Symbol      CryptoType      `json:"symbol"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`     // USD per unit
	Change24h   decimal.Decimal `json:"change24h"` // percent
	LastUpdated time.Time       `json:"last_updated"`
}

type PriceTable map[CryptoType]CryptoPrice

func (t PriceTable) Clone() PriceTable {
	out := make(PriceTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// DefaultPriceTable returns the static USD prices, stamped with asOf.
func DefaultPriceTable(asOf time.Time) PriceTable {
	price := func(sym CryptoType, name, usd, change string) CryptoPrice {
		return CryptoPrice{
			Symbol:      sym,
			Name:        name,
			Price:       decimal.RequireFromString(usd),
			Change24h:   decimal.RequireFromString(change),
			LastUpdated: asOf,
		}
	}
	return PriceTable{
		CryptoETH:   price(CryptoETH, "Ethereum", "2280.50", "2.34"),
		CryptoUSDT:  price(CryptoUSDT, "Tether", "1.00", "0.01"),
		CryptoUSDC:  price(CryptoUSDC, "USD Coin", "1.00", "-0.02"),
		CryptoMATIC: price(CryptoMATIC, "Polygon", "0.85", "5.67"),
		CryptoBNB:   price(CryptoBNB, "BNB", "312.45", "-1.23"),
	}
}
