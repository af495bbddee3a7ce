package dashboard

import (
	"context"
	"fmt"

	"checkout/internal/models"
	"checkout/internal/repositories"

	"github.com/shopspring/decimal"
)

type Service interface {
	// MerchantStats summarizes transactions for merchantID, or for every
	// merchant when merchantID is empty.
	MerchantStats(ctx context.Context, merchantID string) (*models.MerchantStats, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
}

type service struct {
	transactionRepo repositories.TransactionRepository
}

func NewService(transactionRepo repositories.TransactionRepository) Service {
	return &service{
		transactionRepo: transactionRepo,
	}
}

var hundred = decimal.NewFromInt(100)

func (s *service) MerchantStats(ctx context.Context, merchantID string) (*models.MerchantStats, error) {
	var (
		txs []models.Transaction
		err error
	)
	if merchantID == "" {
		txs, err = s.transactionRepo.List()
	} else {
		txs, err = s.transactionRepo.ListByMerchant(merchantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return computeStats(txs), nil
}

func (s *service) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	txs, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func computeStats(txs []models.Transaction) *models.MerchantStats {
	stats := &models.MerchantStats{
		TotalRevenue:           decimal.Zero,
		TotalTransactions:      len(txs),
		AverageOrderValue:      decimal.Zero,
		ConversionRate:         decimal.Zero,
		RefundRate:             decimal.Zero,
		PaymentMethodBreakdown: make(map[models.PaymentMethod]decimal.Decimal, len(models.PaymentMethods)),
		PaymentMethodCounts:    make(map[models.PaymentMethod]int, len(models.PaymentMethods)),
	}
	for _, m := range models.PaymentMethods {
		stats.PaymentMethodBreakdown[m] = decimal.Zero
		stats.PaymentMethodCounts[m] = 0
	}

	refunded := 0
	for _, tx := range txs {
		stats.PaymentMethodCounts[tx.Method]++

		switch tx.Status {
		case models.TransactionStatusCompleted:
			stats.CompletedTransactions++
			stats.TotalRevenue = stats.TotalRevenue.Add(tx.Amount)
			stats.PaymentMethodBreakdown[tx.Method] = stats.PaymentMethodBreakdown[tx.Method].Add(tx.Amount)
		case models.TransactionStatusRefunded:
			refunded++
		}
	}

	stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(max(stats.CompletedTransactions, 1))))
	if stats.TotalTransactions > 0 {
		total := decimal.NewFromInt(int64(stats.TotalTransactions))
		stats.ConversionRate = decimal.NewFromInt(int64(stats.CompletedTransactions)).Mul(hundred).Div(total)
		stats.RefundRate = decimal.NewFromInt(int64(refunded)).Mul(hundred).Div(total)
	}
	return stats
}
