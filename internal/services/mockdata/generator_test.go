package mockdata

import (
	"testing"
	"time"

	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/services/fee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(seed uint64) *Generator {
	return NewGenerator(fee.NewCalculator(models.DefaultFeeSchedule(), logger.Discard()), seed)
}

func TestTransactions(t *testing.T) {
	g := newGenerator(42)
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	txs := g.Transactions(200)
	require.Len(t, txs, 200)

	low := decimal.NewFromInt(10)
	high := decimal.NewFromInt(510)
	for i, tx := range txs {
		assert.True(t, tx.Amount.GreaterThanOrEqual(low) && tx.Amount.LessThan(high), "amount %s", tx.Amount)
		assert.True(t, tx.Method.Valid())
		if tx.Method == models.PaymentMethodCrypto {
			assert.True(t, tx.CryptoType.Valid())
		} else {
			assert.Empty(t, tx.CryptoType)
		}
		_, ok := MerchantByID(tx.MerchantID)
		assert.True(t, ok)
		assert.Equal(t, "USD", tx.Currency)
		assert.True(t, tx.Fees.Subtotal.Equal(tx.Amount))
		assert.True(t, tx.Fees.Subtotal.Add(tx.Fees.Fees()).Equal(tx.Fees.Total))
		assert.Equal(t, tx.Status == models.TransactionStatusCompleted, tx.Refundable)
		assert.False(t, tx.Timestamp.After(now))
		assert.True(t, now.Sub(tx.Timestamp) < 30*24*time.Hour)
		if i > 0 {
			assert.False(t, tx.Timestamp.After(txs[i-1].Timestamp), "not sorted newest first at %d", i)
		}
	}
}

func TestTransactionsSameSeedSameShape(t *testing.T) {
	a := newGenerator(7).Transactions(20)
	b := newGenerator(7).Transactions(20)

	for i := range a {
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
		assert.Equal(t, a[i].Method, b[i].Method)
		assert.Equal(t, a[i].MerchantID, b[i].MerchantID)
	}
}

func TestTransactionsNonPositiveCount(t *testing.T) {
	assert.Empty(t, newGenerator(1).Transactions(0))
	assert.Empty(t, newGenerator(1).Transactions(-3))
}

func TestCheckout(t *testing.T) {
	session := newGenerator(1).Checkout()

	assert.Equal(t, "MER-001", session.MerchantID)
	assert.Equal(t, "TechStore Pro", session.MerchantName)
	assert.Len(t, session.Items, 2)
	assert.True(t, decimal.RequireFromString("429.98").Equal(session.Subtotal))
	assert.Regexp(t, `^CHK-\d+$`, session.ID)
}
