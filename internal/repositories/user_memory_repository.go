package repositories

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"jobtrack/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User // keyed by username
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("user %s: %w", user.Username, ErrDuplicate)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.Username] = *user
	return nil
}

func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) }, "email "+email)
}

func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id }, "id "+id)
}

func (r *MemoryUserRepository) SetResumeID(username, resumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	user.ResumeID = resumeID
	user.UpdatedAt = time.Now()
	r.users[username] = user
	return nil
}

func (r *MemoryUserRepository) find(match func(models.User) bool, what string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with %s: %w", what, ErrNotFound)
}
