package repositories

import (
	"sync"

	apperrors "checkout/internal/errors"
	"checkout/internal/models"
)

type UserRepository interface {
	// Save inserts or replaces the user with the same ID.
	Save(user *models.User) error

	GetByID(id string) (*models.User, error)

	// IncrementTokenVersion invalidates every token issued to the user so far.
	IncrementTokenVersion(id string) error
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) IncrementTokenVersion(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.TokenVersion++
	r.users[id] = u
	return nil
}
