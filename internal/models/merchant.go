package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Merchant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Industry  string    `json:"industry"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MerchantStats summarizes transactions for the merchant dashboard. Rates are
// percentages.
type MerchantStats struct {
	TotalRevenue           decimal.Decimal                   `json:"total_revenue"`
	TotalTransactions      int                               `json:"total_transactions"`
	CompletedTransactions  int                               `json:"completed_transactions"`
	AverageOrderValue      decimal.Decimal                   `json:"average_order_value"`
	ConversionRate         decimal.Decimal                   `json:"conversion_rate"`
	RefundRate             decimal.Decimal                   `json:"refund_rate"`
	PaymentMethodBreakdown map[PaymentMethod]decimal.Decimal `json:"payment_method_breakdown"`
	PaymentMethodCounts    map[PaymentMethod]int             `json:"payment_method_counts"`
}
