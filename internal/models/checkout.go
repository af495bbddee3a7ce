package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
}

type CheckoutSession struct {
	ID           string          `json:"id"`
	Items        []CheckoutItem  `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name"`
	CreatedAt    time.Time       `json:"created_at"`
}
