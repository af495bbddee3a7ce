package payment

import (
	"context"

	"checkout/internal/models"

	"github.com/shopspring/decimal"
)

// Service runs the checkout flow and keeps the transaction history.
type Service interface {
	// Checkout sessions
	CreateCheckout(ctx context.Context) (*models.CheckoutSession, error)
	GetCheckout(ctx context.Context, id string) (*models.CheckoutSession, error)

	// Pricing
	Quote(amount decimal.Decimal, method models.PaymentMethod, cryptoType models.CryptoType) Quote

	// Payments
	ProcessPayment(ctx context.Context, req PaymentRequest) (*models.Transaction, error)

	// Transaction history
	AddTransaction(ctx context.Context, tx models.Transaction) error
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	SeedMockTransactions(ctx context.Context, n int) (int, error)
}

// Dependencies required by the payment service
type FeeCalculator interface {
	ComputeFees(amount decimal.Decimal, method models.PaymentMethod, cryptoType models.CryptoType) models.FeeBreakdown
}

type CryptoConverter interface {
	ToCrypto(usdAmount decimal.Decimal, symbol models.CryptoType) decimal.Decimal
}

type MockSource interface {
	Transactions(n int) []models.Transaction
	Checkout() *models.CheckoutSession
}

// Notifier is told about every completed payment. A nil Notifier is allowed.
type Notifier interface {
	SendPaymentReceipt(ctx context.Context, tx *models.Transaction) error
}
