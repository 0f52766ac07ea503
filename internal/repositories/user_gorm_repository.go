package repositories

import (
	"errors"
	"fmt"

	"jobtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a user, reporting ErrDuplicate when the username or email is taken.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %s: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.first("username = ?", username)
}

func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.first("email = ?", email)
}

func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.first("id = ?", id)
}

func (r *GORMUserRepository) SetResumeID(username, resumeID string) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).Update("resume_id", resumeID)
	if res.Error != nil {
		return fmt.Errorf("failed to set resume for user %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return nil
}

func (r *GORMUserRepository) first(query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user where %s %s: %w", query, arg, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user where %s %s: %w", query, arg, err)
	}
	return &user, nil
}
