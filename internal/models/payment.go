package models

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentMethodCrypto PaymentMethod = "crypto"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodBank   PaymentMethod = "bank"
)

// PaymentMethods lists the supported methods in display order.
var PaymentMethods = []PaymentMethod{PaymentMethodCrypto, PaymentMethodCard, PaymentMethodBank}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCrypto, PaymentMethodCard, PaymentMethodBank:
		return true
	}
	return false
}

type CryptoType string

const (
	CryptoETH   CryptoType = "ETH"
	CryptoUSDT  CryptoType = "USDT"
	CryptoUSDC  CryptoType = "USDC"
	CryptoMATIC CryptoType = "MATIC"
	CryptoBNB   CryptoType = "BNB"
)

// CryptoTypes lists the supported currencies in display order.
var CryptoTypes = []CryptoType{CryptoETH, CryptoUSDT, CryptoUSDC, CryptoMATIC, CryptoBNB}

func (c CryptoType) Valid() bool {
	switch c {
	case CryptoETH, CryptoUSDT, CryptoUSDC, CryptoMATIC, CryptoBNB:
		return true
	}
	return false
}

// FeeBreakdown itemizes the charge for a single payment. NetworkFee and
// Spread are nil unless the payment was made in crypto and the component is
// strictly positive.
type FeeBreakdown struct {
	Subtotal      decimal.Decimal  `json:"subtotal"`
	ProcessingFee decimal.Decimal  `json:"processing_fee"`
	NetworkFee    *decimal.Decimal `json:"network_fee,omitempty"`
	Spread        *decimal.Decimal `json:"spread,omitempty"`
	Total         decimal.Decimal  `json:"total"`
}

// Fees returns the sum of every fee component, excluding the subtotal.
func (b FeeBreakdown) Fees() decimal.Decimal {
	fees := b.ProcessingFee
	if b.NetworkFee != nil {
		fees = fees.Add(*b.NetworkFee)
	}
	if b.Spread != nil {
		fees = fees.Add(*b.Spread)
	}
	return fees
}
