package fee

import (
	"bytes"
	"log/slog"
	"testing"

	"checkout/internal/logger"
	"checkout/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCalculator() *Calculator {
	return NewCalculator(models.DefaultFeeSchedule(), logger.Discard())
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeFees_Card(t *testing.T) {
	b := newCalculator().ComputeFees(dec("100"), models.PaymentMethodCard, "")

	assertDecimal(t, "100", b.Subtotal)
	assertDecimal(t, "3.20", b.ProcessingFee)
	assertDecimal(t, "103.20", b.Total)
	assert.Nil(t, b.NetworkFee)
	assert.Nil(t, b.Spread)
}

func TestComputeFees_Bank(t *testing.T) {
	b := newCalculator().ComputeFees(dec("250"), models.PaymentMethodBank, "")

	assertDecimal(t, "2.50", b.ProcessingFee)
	assertDecimal(t, "252.50", b.Total)
	assert.Nil(t, b.NetworkFee)
	assert.Nil(t, b.Spread)
}

func TestComputeFees_CryptoETH(t *testing.T) {
	b := newCalculator().ComputeFees(dec("100"), models.PaymentMethodCrypto, models.CryptoETH)

	assertDecimal(t, "1.50", b.ProcessingFee)
	require.NotNil(t, b.NetworkFee)
	require.NotNil(t, b.Spread)
	assertDecimal(t, "0.20", *b.NetworkFee)
	assertDecimal(t, "0.50", *b.Spread)
	assertDecimal(t, "102.20", b.Total)
}

func TestComputeFees_CryptoEverySymbol(t *testing.T) {
	calc := newCalculator()
	schedule := models.DefaultFeeSchedule()
	amounts := []string{"0.01", "10", "99.99", "510", "123456.789"}

	for _, sym := range models.CryptoTypes {
		rate := schedule.Crypto[sym]
		for _, a := range amounts {
			t.Run(string(sym)+"/"+a, func(t *testing.T) {
				amount := dec(a)
				b := calc.ComputeFees(amount, models.PaymentMethodCrypto, sym)

				sumRates := rate.ProcessingFeeRate.Add(rate.NetworkFeeRate).Add(rate.SpreadRate)
				assert.True(t, amount.Add(amount.Mul(sumRates)).Equal(b.Total))
				assert.True(t, b.Subtotal.Add(b.Fees()).Equal(b.Total))
			})
		}
	}
}

func TestComputeFees_CardAndBankProperty(t *testing.T) {
	calc := newCalculator()
	schedule := models.DefaultFeeSchedule()

	for _, a := range []string{"0.5", "1", "42.42", "1000", "99999.99"} {
		amount := dec(a)

		card := calc.ComputeFees(amount, models.PaymentMethodCard, models.CryptoETH)
		assert.True(t, amount.Add(amount.Mul(schedule.CardRate)).Add(schedule.CardFixed).Equal(card.Total), a)
		assert.Nil(t, card.NetworkFee)
		assert.Nil(t, card.Spread)

		bank := calc.ComputeFees(amount, models.PaymentMethodBank, "")
		assert.True(t, amount.Add(amount.Mul(schedule.BankRate)).Add(schedule.BankFixed).Equal(bank.Total), a)
	}
}

func TestComputeFees_CryptoWithoutValidSymbol(t *testing.T) {
	tests := []struct {
		name   string
		crypto models.CryptoType
	}{
		{name: "missing", crypto: ""},
		{name: "unknown", crypto: "DOGE"},
		{name: "lowercase", crypto: "eth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			calc := NewCalculator(models.DefaultFeeSchedule(), slog.New(slog.NewTextHandler(&buf, nil)))

			b := calc.ComputeFees(dec("100"), models.PaymentMethodCrypto, tt.crypto)

			assert.True(t, b.ProcessingFee.IsZero())
			assert.Nil(t, b.NetworkFee)
			assert.Nil(t, b.Spread)
			assertDecimal(t, "100", b.Total)
			assert.Contains(t, buf.String(), "level=WARN")
		})
	}
}

func TestComputeFees_UnknownMethod(t *testing.T) {
	b := newCalculator().ComputeFees(dec("80"), models.PaymentMethod("cash"), "")

	assert.True(t, b.ProcessingFee.IsZero())
	assertDecimal(t, "80", b.Total)
}

func TestComputeFees_ZeroComponentOmitted(t *testing.T) {
	schedule := models.DefaultFeeSchedule()
	schedule.Crypto[models.CryptoUSDT] = models.CryptoFeeRate{
		ProcessingFeeRate: dec("0.01"),
		NetworkFeeRate:    decimal.Zero,
		SpreadRate:        dec("0.002"),
	}
	calc := NewCalculator(schedule, logger.Discard())

	b := calc.ComputeFees(dec("100"), models.PaymentMethodCrypto, models.CryptoUSDT)

	assert.Nil(t, b.NetworkFee)
	require.NotNil(t, b.Spread)
	assertDecimal(t, "0.2", *b.Spread)
	assertDecimal(t, "101.2", b.Total)
}

func TestNewCalculator_CopiesSchedule(t *testing.T) {
	schedule := models.DefaultFeeSchedule()
	calc := NewCalculator(schedule, logger.Discard())

	delete(schedule.Crypto, models.CryptoETH)
	schedule.CardRate = decimal.Zero

	b := calc.ComputeFees(dec("100"), models.PaymentMethodCrypto, models.CryptoETH)
	assertDecimal(t, "102.20", b.Total)
	assertDecimal(t, "0.029", calc.Schedule().CardRate)
}
