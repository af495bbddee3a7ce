package payment

import (
	"time"

	"checkout/internal/models"

	"github.com/shopspring/decimal"
)

const (
	defaultCurrency     = "USD"
	unknownMerchantName = "Unknown Merchant"
	defaultDescription  = "Payment"
)

// PaymentRequest describes a payment. When CheckoutID is set, a zero Amount
// and an empty MerchantID are taken from the checkout session.
type PaymentRequest struct {
	UserID     string
	UserEmail  string
	CheckoutID string
	MerchantID string
	Amount     decimal.Decimal
	Method     models.PaymentMethod
	CryptoType models.CryptoType
}

// Quote is the price of a payment before it is made. CryptoAmount is the
// total expressed in CryptoType and is only set for crypto payments.
type Quote struct {
	Fees         models.FeeBreakdown  `json:"fees"`
	Method       models.PaymentMethod `json:"method"`
	CryptoType   models.CryptoType    `json:"crypto_type,omitempty"`
	CryptoAmount *decimal.Decimal     `json:"crypto_amount,omitempty"`
}

type Config struct {
	// ProcessingDelay simulates the time a payment takes to clear.
	ProcessingDelay time.Duration
}
