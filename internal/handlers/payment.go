package handlers

import (
	"checkout/internal/models"
	"checkout/internal/services/payment"
	"checkout/internal/utils"
	"checkout/internal/utils/format"
	"checkout/internal/utils/response"
	"checkout/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type quoteView struct {
	payment.Quote
	FormattedTotal        string `json:"formatted_total"`
	FormattedCryptoAmount string `json:"formatted_crypto_amount,omitempty"`
}

// QuoteFees prices a payment without making it. A crypto quote without a
// supported crypto_type carries no fees.
func (h *PaymentHandler) QuoteFees(c *fiber.Ctx) error {
	var input struct {
		Amount     decimal.Decimal `json:"amount"`
		Method     string          `json:"method" validate:"required,payment_method"`
		CryptoType string          `json:"crypto_type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(input); err != nil {
		return handleError(c, err)
	}
	if err := validation.PositiveAmount("amount", input.Amount); err != nil {
		return handleError(c, err)
	}

	q := h.paymentService.Quote(input.Amount, models.PaymentMethod(input.Method), models.CryptoType(input.CryptoType))
	view := quoteView{
		Quote:          q,
		FormattedTotal: format.FormatCurrency(q.Fees.Total, "USD"),
	}
	if q.CryptoAmount != nil {
		view.FormattedCryptoAmount = format.FormatCrypto(*q.CryptoAmount, string(q.CryptoType))
	}
	return response.Success(c, "Quote computed successfully", view)
}

func (h *PaymentHandler) CreateCheckout(c *fiber.Ctx) error {
	session, err := h.paymentService.CreateCheckout(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Checkout created successfully", session)
}

func (h *PaymentHandler) GetCheckout(c *fiber.Ctx) error {
	session, err := h.paymentService.GetCheckout(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Checkout retrieved successfully", session)
}

// ProcessPayment pays a checkout session, or an explicit amount, for the
// signed-in user.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		CheckoutID string          `json:"checkout_id"`
		MerchantID string          `json:"merchant_id"`
		Amount     decimal.Decimal `json:"amount"`
		Method     string          `json:"method" validate:"required,payment_method"`
		CryptoType string          `json:"crypto_type" validate:"required_if=Method crypto,omitempty,crypto_type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(input); err != nil {
		return handleError(c, err)
	}
	if input.CheckoutID == "" {
		if err := validation.PositiveAmount("amount", input.Amount); err != nil {
			return handleError(c, err)
		}
	}

	tx, err := h.paymentService.ProcessPayment(c.Context(), payment.PaymentRequest{
		UserID:     claims.UserID,
		UserEmail:  claims.Email,
		CheckoutID: input.CheckoutID,
		MerchantID: input.MerchantID,
		Amount:     input.Amount,
		Method:     models.PaymentMethod(input.Method),
		CryptoType: models.CryptoType(input.CryptoType),
	})
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Payment successful", tx)
}
