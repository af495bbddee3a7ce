package handlers

import (
	"checkout/internal/models"
	"checkout/internal/utils/format"
	"checkout/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PriceProvider converts between USD and crypto amounts.
type PriceProvider interface {
	ToCrypto(usdAmount decimal.Decimal, symbol models.CryptoType) decimal.Decimal
	ToUSD(cryptoAmount decimal.Decimal, symbol models.CryptoType) decimal.Decimal
	Prices() []models.CryptoPrice
}

const (
	directionToCrypto = "to_crypto"
	directionToUSD    = "to_usd"
)

type CryptoHandler struct {
	prices PriceProvider
}

func NewCryptoHandler(prices PriceProvider) *CryptoHandler {
	return &CryptoHandler{prices: prices}
}

type priceView struct {
	models.CryptoPrice
	FormattedPrice  string `json:"formatted_price"`
	FormattedChange string `json:"formatted_change"`
}

type conversionView struct {
	Amount    decimal.Decimal   `json:"amount"`
	Symbol    models.CryptoType `json:"symbol"`
	Direction string            `json:"direction"`
	Result    decimal.Decimal   `json:"result"`
	Formatted string            `json:"formatted"`
}

func (h *CryptoHandler) GetPrices(c *fiber.Ctx) error {
	prices := h.prices.Prices()
	views := make([]priceView, 0, len(prices))
	for _, p := range prices {
		views = append(views, priceView{
			CryptoPrice:     p,
			FormattedPrice:  format.FormatCurrency(p.Price, "USD"),
			FormattedChange: format.FormatPercentage(p.Change24h),
		})
	}
	return response.Success(c, "Prices retrieved successfully", views)
}

// Convert converts amount between USD and symbol. Unknown symbols convert
// to zero.
func (h *CryptoHandler) Convert(c *fiber.Ctx) error {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		return response.BadRequest(c, "amount must be a decimal number")
	}
	symbol := models.CryptoType(c.Query("symbol"))
	direction := c.Query("direction", directionToCrypto)

	view := conversionView{Amount: amount, Symbol: symbol, Direction: direction}
	switch direction {
	case directionToCrypto:
		view.Result = h.prices.ToCrypto(amount, symbol)
		view.Formatted = format.FormatCrypto(view.Result, string(symbol))
	case directionToUSD:
		view.Result = h.prices.ToUSD(amount, symbol)
		view.Formatted = format.FormatCurrency(view.Result, "USD")
	default:
		return response.BadRequest(c, "direction must be to_crypto or to_usd")
	}

	return response.Success(c, "Conversion successful", view)
}
