package handlers

import (
	"context"
	"errors"

	apperrors "checkout/internal/errors"
	"checkout/internal/logger"
	"checkout/internal/utils/response"
	"checkout/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var statusByCode = map[string]int{
	apperrors.ErrInvalidAmount.Code:       fiber.StatusBadRequest,
	apperrors.ErrUnsupportedMethod.Code:   fiber.StatusBadRequest,
	apperrors.ErrCryptoTypeRequired.Code:  fiber.StatusBadRequest,
	apperrors.ErrUnsupportedProvider.Code: fiber.StatusBadRequest,
	apperrors.ErrTransactionNotFound.Code: fiber.StatusNotFound,
	apperrors.ErrCheckoutNotFound.Code:    fiber.StatusNotFound,
	apperrors.ErrUserNotFound.Code:        fiber.StatusNotFound,
	apperrors.ErrInvalidToken.Code:        fiber.StatusUnauthorized,
	apperrors.ErrSessionExpired.Code:      fiber.StatusUnauthorized,
}

// handleError maps service errors onto HTTP responses.
func handleError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	}

	var de *apperrors.DomainError
	if errors.As(err, &de) {
		if status, ok := statusByCode[de.Code]; ok {
			return c.Status(status).JSON(fiber.Map{
				"error": de.Message,
				"code":  de.Code,
			})
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return response.Error(c, fiber.StatusRequestTimeout, "request cancelled")
	}

	logger.WithComponent("http").Error("request failed", "path", c.Path(), "error", err)
	return response.ServerError(c, "internal server error")
}
