// Package format renders amounts, dates and identifiers for API responses.
package format

import (
	"fmt"
	"strings"
	"time"

	"checkout/internal/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var currencySymbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// FormatCurrency renders amount with en-US grouping and two decimals, e.g.
// "$1,234.50". Unknown ISO codes are treated as USD; valid codes without a
// known symbol are prefixed with the code. The result is exact for any
// magnitude.
func FormatCurrency(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	symbol, ok := currencySymbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}

	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + symbol + groupThousands(whole) + "." + cents
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func FormatCrypto(amount decimal.Decimal, symbol string) string {
	return amount.StringFixed(6) + " " + symbol
}

// FormatPercentage renders a signed percentage such as "+2.34%".
func FormatPercentage(value decimal.Decimal) string {
	sign := ""
	if !value.IsNegative() {
		sign = "+"
	}
	return sign + value.StringFixed(2) + "%"
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

func FormatDateTime(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04")
}

// ShortenAddress keeps the first chars+2 and last chars characters of a
// wallet address. Addresses too short to shorten are returned as is.
func ShortenAddress(address string, chars int) string {
	if chars < 0 || len(address) <= 2*chars+2 {
		return address
	}
	return address[:chars+2] + "..." + address[len(address)-chars:]
}

func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), utils.RandomSuffix(7))
}

func GenerateUserID() string {
	return fmt.Sprintf("USR-%d-%s", time.Now().UnixMilli(), utils.RandomSuffix(7))
}

func GenerateCheckoutID() string {
	return fmt.Sprintf("CHK-%d", time.Now().UnixMilli())
}
