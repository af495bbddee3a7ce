package handlers

import (
	"checkout/internal/services/payment"
	"checkout/internal/utils"
	"checkout/internal/utils/pagination"
	"checkout/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	paymentService payment.Service
}

func NewTransactionHandler(paymentService payment.Service) *TransactionHandler {
	return &TransactionHandler{
		paymentService: paymentService,
	}
}

// GetUserTransactions lists the signed-in user's transactions, newest first.
func (h *TransactionHandler) GetUserTransactions(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	txs, err := h.paymentService.ListUserTransactions(c.Context(), claims.UserID)
	if err != nil {
		return handleError(c, err)
	}

	p := pagination.ParseFromRequest(c, 20)
	page := pagination.Apply(&p, txs)
	return response.Paginated(c, "Transactions retrieved successfully", p, page)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	tx, err := h.paymentService.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Transaction retrieved successfully", tx)
}
