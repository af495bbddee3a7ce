package repositories

import (
	"sync"

	apperrors "checkout/internal/errors"
	"checkout/internal/models"
)

// TransactionRepository stores transactions newest first.
type TransactionRepository interface {
	// Add prepends tx so that listings stay newest first.
	Add(tx models.Transaction) error

	// AddAll prepends txs in order, keeping txs[0] first.
	AddAll(txs []models.Transaction) error

	GetByID(id string) (*models.Transaction, error)
	ListByUser(userID string) ([]models.Transaction, error)
	ListByMerchant(merchantID string) ([]models.Transaction, error)
	List() ([]models.Transaction, error)
	Count() int
}

type memoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

func NewTransactionRepository() TransactionRepository {
	return &memoryTransactionRepository{}
}

func (r *memoryTransactionRepository) Add(tx models.Transaction) error {
	return r.AddAll([]models.Transaction{tx})
}

func (r *memoryTransactionRepository) AddAll(txs []models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := make([]models.Transaction, 0, len(txs)+len(r.transactions))
	merged = append(merged, txs...)
	r.transactions = append(merged, r.transactions...)
	return nil
}

func (r *memoryTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.transactions {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (r *memoryTransactionRepository) ListByUser(userID string) ([]models.Transaction, error) {
	return r.filter(func(tx models.Transaction) bool { return tx.UserID == userID }), nil
}

func (r *memoryTransactionRepository) ListByMerchant(merchantID string) ([]models.Transaction, error) {
	return r.filter(func(tx models.Transaction) bool { return tx.MerchantID == merchantID }), nil
}

func (r *memoryTransactionRepository) List() ([]models.Transaction, error) {
	return r.filter(func(models.Transaction) bool { return true }), nil
}

func (r *memoryTransactionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

func (r *memoryTransactionRepository) filter(keep func(models.Transaction) bool) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0)
	for _, tx := range r.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}
