package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusRefunded   TransactionStatus = "refunded"
)

type Transaction struct {
	ID           string            `json:"id"`
	MerchantID   string            `json:"merchant_id"`
	MerchantName string            `json:"merchant_name"`
	UserID       string            `json:"user_id"`
	UserEmail    string            `json:"user_email"`
	Amount       decimal.Decimal   `json:"amount"`
	Currency     string            `json:"currency"`
	Method       PaymentMethod     `json:"method"`
	CryptoType   CryptoType        `json:"crypto_type,omitempty"`
	Status       TransactionStatus `json:"status"`
	Fees         FeeBreakdown      `json:"fees"`
	Timestamp    time.Time         `json:"timestamp"`
	Description  string            `json:"description"`
	Refundable   bool              `json:"refundable"`
}
