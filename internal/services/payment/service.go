package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "checkout/internal/errors"
	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/repositories"
	"checkout/internal/utils"
	"checkout/internal/utils/format"

	"github.com/shopspring/decimal"
)

type service struct {
	transactions repositories.TransactionRepository
	checkouts    repositories.CheckoutRepository
	fees         FeeCalculator
	converter    CryptoConverter
	mock         MockSource
	notifier     Notifier
	cfg          Config
	log          *slog.Logger
}

func NewService(
	transactions repositories.TransactionRepository,
	checkouts repositories.CheckoutRepository,
	fees FeeCalculator,
	converter CryptoConverter,
	mock MockSource,
	notifier Notifier,
	cfg Config,
	log *slog.Logger,
) Service {
	if log == nil {
		log = logger.WithComponent("payment")
	}
	return &service{
		transactions: transactions,
		checkouts:    checkouts,
		fees:         fees,
		converter:    converter,
		mock:         mock,
		notifier:     notifier,
		cfg:          cfg,
		log:          log,
	}
}

func (s *service) CreateCheckout(ctx context.Context) (*models.CheckoutSession, error) {
	session := s.mock.Checkout()
	if err := s.checkouts.Save(session); err != nil {
		return nil, fmt.Errorf("save checkout: %w", err)
	}
	s.log.Debug("checkout created", "checkout_id", session.ID, "subtotal", session.Subtotal.String())
	return session, nil
}

func (s *service) GetCheckout(ctx context.Context, id string) (*models.CheckoutSession, error) {
	return s.checkouts.GetByID(id)
}

func (s *service) Quote(amount decimal.Decimal, method models.PaymentMethod, cryptoType models.CryptoType) Quote {
	if method != models.PaymentMethodCrypto {
		cryptoType = ""
	}

	q := Quote{
		Fees:       s.fees.ComputeFees(amount, method, cryptoType),
		Method:     method,
		CryptoType: cryptoType,
	}
	if method == models.PaymentMethodCrypto && cryptoType.Valid() {
		converted := s.converter.ToCrypto(q.Fees.Total, cryptoType)
		q.CryptoAmount = &converted
	}
	return q
}

// ProcessPayment validates req, waits for the simulated processor and
// records a completed transaction.
func (s *service) ProcessPayment(ctx context.Context, req PaymentRequest) (*models.Transaction, error) {
	var checkout *models.CheckoutSession
	if req.CheckoutID != "" {
		var err error
		checkout, err = s.checkouts.GetByID(req.CheckoutID)
		if err != nil {
			return nil, err
		}
		if req.Amount.IsZero() {
			req.Amount = checkout.Subtotal
		}
		if req.MerchantID == "" {
			req.MerchantID = checkout.MerchantID
		}
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !req.Method.Valid() {
		return nil, apperrors.ErrUnsupportedMethod
	}
	if req.Method != models.PaymentMethodCrypto {
		req.CryptoType = ""
	} else if !req.CryptoType.Valid() {
		return nil, apperrors.ErrCryptoTypeRequired
	}

	if err := utils.Sleep(ctx, s.cfg.ProcessingDelay); err != nil {
		return nil, fmt.Errorf("payment processing interrupted: %w", err)
	}

	tx := models.Transaction{
		ID:           format.GenerateTransactionID(),
		MerchantID:   req.MerchantID,
		MerchantName: unknownMerchantName,
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Amount:       req.Amount,
		Currency:     defaultCurrency,
		Method:       req.Method,
		CryptoType:   req.CryptoType,
		Status:       models.TransactionStatusCompleted,
		Fees:         s.fees.ComputeFees(req.Amount, req.Method, req.CryptoType),
		Timestamp:    time.Now(),
		Description:  defaultDescription,
		Refundable:   true,
	}
	if checkout != nil {
		tx.MerchantName = checkout.MerchantName
		if desc := describeItems(checkout.Items); desc != "" {
			tx.Description = desc
		}
	}

	if err := s.transactions.Add(tx); err != nil {
		return nil, fmt.Errorf("store transaction: %w", err)
	}

	s.log.Info("payment processed",
		"transaction_id", tx.ID,
		"method", string(tx.Method),
		"amount", tx.Amount.String(),
		"total", tx.Fees.Total.String(),
	)

	if s.notifier != nil {
		if err := s.notifier.SendPaymentReceipt(ctx, &tx); err != nil {
			s.log.Warn("failed to send payment receipt", "transaction_id", tx.ID, "error", err)
		}
	}
	return &tx, nil
}

func (s *service) AddTransaction(ctx context.Context, tx models.Transaction) error {
	return s.transactions.Add(tx)
}

func (s *service) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactions.GetByID(id)
}

func (s *service) ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.transactions.ListByUser(userID)
}

func (s *service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.List()
}

// SeedMockTransactions fills an empty history with n generated transactions
// and reports how many were added.
func (s *service) SeedMockTransactions(ctx context.Context, n int) (int, error) {
	if s.transactions.Count() > 0 || n <= 0 {
		return 0, nil
	}

	txs := s.mock.Transactions(n)
	if err := s.transactions.AddAll(txs); err != nil {
		return 0, fmt.Errorf("seed transactions: %w", err)
	}
	s.log.Info("seeded mock transactions", "count", len(txs))
	return len(txs), nil
}

func describeItems(items []models.CheckoutItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return strings.Join(names, ", ")
}
