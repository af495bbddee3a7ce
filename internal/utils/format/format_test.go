package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{amount: "103.2", code: "USD", want: "$103.20"},
		{amount: "1234.5", code: "USD", want: "$1,234.50"},
		{amount: "1234567.891", code: "USD", want: "$1,234,567.89"},
		{amount: "0", code: "USD", want: "$0.00"},
		{amount: "-3.2", code: "USD", want: "-$3.20"},
		{amount: "10", code: "EUR", want: "€10.00"},
		{amount: "10", code: "not-a-code", want: "$10.00"},
		{amount: "999.995", code: "USD", want: "$1,000.00"},
		{amount: "-0.004", code: "USD", want: "$0.00"},
		{amount: "100000", code: "USD", want: "$100,000.00"},
		{amount: "90071992547409.93", code: "USD", want: "$90,071,992,547,409.93"},
		{amount: "123456789012345678901.23", code: "USD", want: "$123,456,789,012,345,678,901.23"},
		{amount: "-1234567.891", code: "GBP", want: "-£1,234,567.89"},
		{amount: "5", code: "CHF", want: "CHF 5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+" "+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(dec(tt.amount), tt.code))
		})
	}
}

func TestFormatCrypto(t *testing.T) {
	assert.Equal(t, "1.000000 ETH", FormatCrypto(dec("1"), "ETH"))
	assert.Equal(t, "0.045253 ETH", FormatCrypto(dec("0.0452532"), "ETH"))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "+2.34%", FormatPercentage(dec("2.34")))
	assert.Equal(t, "-1.23%", FormatPercentage(dec("-1.23")))
	assert.Equal(t, "+0.00%", FormatPercentage(decimal.Zero))
}

func TestFormatDates(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 05, 2024", FormatDate(ts))
	assert.Equal(t, "Mar 05, 2024 14:07", FormatDateTime(ts))
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "0x1234...cdef", ShortenAddress("0x1234567890abcdef", 4))
	assert.Equal(t, "0x12", ShortenAddress("0x12", 4))
}

func TestGeneratedIDs(t *testing.T) {
	assert.Regexp(t, `^TXN-\d+-[0-9A-F]{7}$`, GenerateTransactionID())
	assert.Regexp(t, `^USR-\d+-[0-9A-F]{7}$`, GenerateUserID())
	assert.Regexp(t, `^CHK-\d+$`, GenerateCheckoutID())
	assert.NotEqual(t, GenerateTransactionID(), GenerateTransactionID())
}
