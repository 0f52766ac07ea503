package repositories

import (
	"errors"
	"fmt"

	"jobtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSkillProfileRepository is a GORM implementation of SkillProfileRepository.
type GORMSkillProfileRepository struct {
	db *gorm.DB
}

// NewGORMSkillProfileRepository creates a new instance of GORMSkillProfileRepository.
func NewGORMSkillProfileRepository(db *gorm.DB) *GORMSkillProfileRepository {
	return &GORMSkillProfileRepository{db: db}
}

func (r *GORMSkillProfileRepository) GetByUsername(username string) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	if err := r.db.First(&profile, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("skill profile for %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get skill profile for %s: %w", username, err)
	}
	return &profile, nil
}

func (r *GORMSkillProfileRepository) Create(profile *models.SkillProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("skill profile for %s: %w", profile.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create skill profile: %w", err)
	}
	return nil
}

// Update writes every column of profile, including zero values.
func (r *GORMSkillProfileRepository) Update(profile *models.SkillProfile) error {
	res := r.db.Model(&models.SkillProfile{}).
		Where("username = ?", profile.Username).
		Select("skills", "interested_job_roles", "preference", "experience", "location").
		Updates(profile)
	if res.Error != nil {
		return fmt.Errorf("failed to update skill profile for %s: %w", profile.Username, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("skill profile for %s: %w", profile.Username, ErrNotFound)
	}
	return nil
}
