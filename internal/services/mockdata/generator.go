// Package mockdata generates the demo merchants, checkout items and
// transaction history shown on the dashboard.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"checkout/internal/models"
	"checkout/internal/services/fee"
	"checkout/internal/utils/format"

	"github.com/shopspring/decimal"
)

// FeeCalculator computes the fees recorded on generated transactions.
type FeeCalculator interface {
	ComputeFees(amount decimal.Decimal, method models.PaymentMethod, cryptoType models.CryptoType) models.FeeBreakdown
}

var _ FeeCalculator = (*fee.Calculator)(nil)

func Merchants() []models.Merchant {
	return []models.Merchant{
		{ID: "MER-001", Name: "TechStore Pro", Email: "contact@techstore.com", Industry: "Electronics", Logo: "🖥️", CreatedAt: date(2024, time.January, 15)},
		{ID: "MER-002", Name: "Fashion Hub", Email: "hello@fashionhub.com", Industry: "Fashion", Logo: "👗", CreatedAt: date(2024, time.February, 20)},
		{ID: "MER-003", Name: "Coffee Corner", Email: "info@coffeecorner.com", Industry: "Food & Beverage", Logo: "☕", CreatedAt: date(2024, time.March, 10)},
		{ID: "MER-004", Name: "Book Haven", Email: "support@bookhaven.com", Industry: "Books", Logo: "📚", CreatedAt: date(2024, time.April, 5)},
	}
}

func CheckoutItems() []models.CheckoutItem {
	return []models.CheckoutItem{
		{ID: "ITEM-001", Name: "Wireless Headphones", Quantity: 1, Price: decimal.RequireFromString("129.99"), Image: "🎧"},
		{ID: "ITEM-002", Name: "Smart Watch", Quantity: 1, Price: decimal.RequireFromString("299.99"), Image: "⌚"},
	}
}

// MerchantByID looks a merchant up among Merchants.
func MerchantByID(id string) (models.Merchant, bool) {
	for _, m := range Merchants() {
		if m.ID == id {
			return m, true
		}
	}
	return models.Merchant{}, false
}

// statuses is weighted so three in five transactions complete.
var statuses = []models.TransactionStatus{
	models.TransactionStatusCompleted,
	models.TransactionStatusCompleted,
	models.TransactionStatusCompleted,
	models.TransactionStatusPending,
	models.TransactionStatusFailed,
}

// Generator is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	fees FeeCalculator
	now  func() time.Time
}

// NewGenerator returns a generator seeded with seed, or from the clock when
// seed is zero.
func NewGenerator(fees FeeCalculator, seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		fees: fees,
		now:  time.Now,
	}
}

// Transactions returns n random transactions spread over the last 30 days,
// newest first.
func (g *Generator) Transactions(n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}

	merchants := Merchants()
	now := g.now()
	txs := make([]models.Transaction, 0, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < n; i++ {
		merchant := merchants[g.rng.IntN(len(merchants))]
		method := models.PaymentMethods[g.rng.IntN(len(models.PaymentMethods))]
		var cryptoType models.CryptoType
		if method == models.PaymentMethodCrypto {
			cryptoType = models.CryptoTypes[g.rng.IntN(len(models.CryptoTypes))]
		}

		amount := decimal.NewFromFloat(g.rng.Float64()*500 + 10)
		daysAgo := g.rng.IntN(30)
		status := statuses[g.rng.IntN(len(statuses))]

		txs = append(txs, models.Transaction{
			ID:           format.GenerateTransactionID(),
			MerchantID:   merchant.ID,
			MerchantName: merchant.Name,
			UserID:       format.GenerateUserID(),
			UserEmail:    fmt.Sprintf("user%d@example.com", i),
			Amount:       amount,
			Currency:     "USD",
			Method:       method,
			CryptoType:   cryptoType,
			Status:       status,
			Fees:         g.fees.ComputeFees(amount, method, cryptoType),
			Timestamp:    now.AddDate(0, 0, -daysAgo),
			Description:  "Purchase from " + merchant.Name,
			Refundable:   status == models.TransactionStatusCompleted,
		})
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	return txs
}

// Checkout builds a checkout session for the first merchant with the
// standard items.
func (g *Generator) Checkout() *models.CheckoutSession {
	merchant := Merchants()[0]
	items := CheckoutItems()

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &models.CheckoutSession{
		ID:           format.GenerateCheckoutID(),
		Items:        items,
		Subtotal:     subtotal,
		MerchantID:   merchant.ID,
		MerchantName: merchant.Name,
		CreatedAt:    g.now(),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
