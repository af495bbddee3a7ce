// Package notification tells users about completed payments. Receipts are
// written to the log; there is no mail or push delivery.
package notification

import (
	"context"
	"log/slog"

	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/utils/format"
)

// Service is a minimal notification service implementation.
type Service struct {
	log *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = logger.WithComponent("notification")
	}
	return &Service{log: log}
}

// SendPaymentReceipt logs a receipt for tx addressed to the paying user.
func (s *Service) SendPaymentReceipt(ctx context.Context, tx *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attrs := []any{
		"transaction_id", tx.ID,
		"user_id", tx.UserID,
		"merchant", tx.MerchantName,
		"total", format.FormatCurrency(tx.Fees.Total, tx.Currency),
		"date", format.FormatDateTime(tx.Timestamp),
	}
	if tx.UserEmail != "" {
		attrs = append(attrs, "to", tx.UserEmail)
	}
	if tx.CryptoType != "" {
		attrs = append(attrs, "crypto", string(tx.CryptoType))
	}

	s.log.InfoContext(ctx, "payment receipt sent", attrs...)
	return nil
}
