package services

import (
	"errors"
	"fmt"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/pkg/apperror"

	"gorm.io/datatypes"
)

// SkillProfileInput carries profile fields. A nil field was absent from the request.
type SkillProfileInput struct {
	Skills             *[]string
	InterestedJobRoles *[]string
	Preference         *string
	Experience         *int
	Location           *string
}

// SkillService manages the single skill profile each user may have.
type SkillService struct {
	repo repositories.SkillProfileRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillProfileRepository) *SkillService {
	return &SkillService{repo: repo}
}

// GetProfile returns the stored profile or the default one; absence is not an error.
func (s *SkillService) GetProfile(username string) (*models.SkillProfile, error) {
	profile, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.DefaultSkillProfile(username), nil
		}
		return nil, apperror.Storage(err)
	}
	return profile, nil
}

// UpsertProfile creates the profile or replaces every field of the existing one.
// Omitted lists become empty and an omitted preference becomes Remote.
func (s *SkillService) UpsertProfile(username string, in SkillProfileInput) (*models.SkillProfile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	profile := models.DefaultSkillProfile(username)
	applyProfileInput(profile, in)

	existing, err := s.repo.GetByUsername(username)
	switch {
	case err == nil:
		profile.ID = existing.ID
		if err := s.repo.Update(profile); err != nil {
			return nil, apperror.Storage(fmt.Errorf("failed to replace skill profile: %w", err))
		}
	case errors.Is(err, repositories.ErrNotFound):
		if err := s.repo.Create(profile); err != nil {
			if !errors.Is(err, repositories.ErrDuplicate) {
				return nil, apperror.Storage(fmt.Errorf("failed to create skill profile: %w", err))
			}
			// A concurrent request created it first; last write wins.
			if err := s.repo.Update(profile); err != nil {
				return nil, apperror.Storage(fmt.Errorf("failed to replace skill profile: %w", err))
			}
		}
	default:
		return nil, apperror.Storage(err)
	}
	return s.reload(username)
}

// PatchProfile applies only the fields present in the request to an existing profile.
func (s *SkillService) PatchProfile(username string, in SkillProfileInput) (*models.SkillProfile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("Skill profile not found")
		}
		return nil, apperror.Storage(err)
	}

	applyProfileInput(profile, in)
	if err := s.repo.Update(profile); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("Skill profile not found")
		}
		return nil, apperror.Storage(fmt.Errorf("failed to update skill profile: %w", err))
	}
	return s.reload(username)
}

func (s *SkillService) reload(username string) (*models.SkillProfile, error) {
	profile, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return profile, nil
}

func validateProfileInput(in SkillProfileInput) error {
	details := map[string]string{}
	if in.Preference != nil {
		switch *in.Preference {
		case models.PreferenceRemote, models.PreferenceOnsite, models.PreferenceHybrid:
		default:
			details["preference"] = "must be one of Remote, Onsite, Hybrid"
		}
	}
	if in.Experience != nil && *in.Experience < 0 {
		details["experience"] = "must not be negative"
	}
	if len(details) > 0 {
		return apperror.Validation("Invalid skill profile", details)
	}
	return nil
}

func applyProfileInput(profile *models.SkillProfile, in SkillProfileInput) {
	if in.Skills != nil {
		profile.Skills = cleanList(*in.Skills)
	}
	if in.InterestedJobRoles != nil {
		profile.InterestedJobRoles = cleanList(*in.InterestedJobRoles)
	}
	if in.Preference != nil {
		profile.Preference = *in.Preference
	}
	if in.Experience != nil {
		profile.Experience = *in.Experience
	}
	if in.Location != nil {
		profile.Location = strings.TrimSpace(*in.Location)
	}
}

// cleanList trims entries and drops blanks.
func cleanList(items []string) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
