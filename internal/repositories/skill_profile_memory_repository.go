package repositories

import (
	"fmt"
	"sync"

	"jobtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemorySkillProfileRepository is an in-memory implementation of SkillProfileRepository.
type MemorySkillProfileRepository struct {
	profiles map[string]models.SkillProfile
	mu       sync.RWMutex
}

// NewMemorySkillProfileRepository creates a new instance of MemorySkillProfileRepository.
func NewMemorySkillProfileRepository() *MemorySkillProfileRepository {
	return &MemorySkillProfileRepository{
		profiles: make(map[string]models.SkillProfile),
	}
}

func (r *MemorySkillProfileRepository) GetByUsername(username string) (*models.SkillProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[username]
	if !ok {
		return nil, fmt.Errorf("skill profile for %s: %w", username, ErrNotFound)
	}
	return cloneProfile(profile), nil
}

func (r *MemorySkillProfileRepository) Create(profile *models.SkillProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.Username]; ok {
		return fmt.Errorf("skill profile for %s: %w", profile.Username, ErrDuplicate)
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	r.profiles[profile.Username] = *cloneProfile(*profile)
	return nil
}

func (r *MemorySkillProfileRepository) Update(profile *models.SkillProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.Username]
	if !ok {
		return fmt.Errorf("skill profile for %s: %w", profile.Username, ErrNotFound)
	}
	updated := cloneProfile(*profile)
	updated.ID = existing.ID
	r.profiles[profile.Username] = *updated
	return nil
}

// cloneProfile copies the slices so callers cannot mutate stored state.
func cloneProfile(p models.SkillProfile) *models.SkillProfile {
	p.Skills = append(datatypes.JSONSlice[string]{}, p.Skills...)
	p.InterestedJobRoles = append(datatypes.JSONSlice[string]{}, p.InterestedJobRoles...)
	return &p
}
