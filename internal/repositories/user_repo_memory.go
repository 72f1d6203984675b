package repositories

import (
	"fmt"
	"sync"
	"time"

	"jobboard/internal/models"
	"jobboard/pkg/apperror"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now()
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.Conflict(fmt.Sprintf("user with email %s already exists", user.Email))
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns the user with the given email, exact match.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("user with email %s not found", email))
}

// GetByID returns the user with the given ID.
func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("user with ID %s not found", id))
	}
	return &user, nil
}
