package repositories

import (
	"sync"

	apperrors "checkout/internal/errors"
	"checkout/internal/models"
)

type CheckoutRepository interface {
	Save(session *models.CheckoutSession) error
	GetByID(id string) (*models.CheckoutSession, error)
}

type memoryCheckoutRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.CheckoutSession
}

func NewCheckoutRepository() CheckoutRepository {
	return &memoryCheckoutRepository{sessions: make(map[string]models.CheckoutSession)}
}

func (r *memoryCheckoutRepository) Save(session *models.CheckoutSession) error {
	stored := *session
	stored.Items = append([]models.CheckoutItem(nil), session.Items...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = stored
	return nil
}

func (r *memoryCheckoutRepository) GetByID(id string) (*models.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.ErrCheckoutNotFound
	}
	s.Items = append([]models.CheckoutItem(nil), s.Items...)
	return &s, nil
}
