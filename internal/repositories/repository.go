package repositories

import (
	"errors"

	"jobtrack/internal/models"
)

var (
	// ErrNotFound is wrapped by every repository when a lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped when a unique key (username, email) is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// SetResumeID replaces the user's resume reference. An empty id clears it.
	SetResumeID(username, resumeID string) error
}

// JobRepository defines the interface for job application data access.
// Every lookup after creation is scoped to the owning username.
type JobRepository interface {
	Create(job *models.Job) error
	ListByUsername(username string) ([]models.Job, error)
	GetByIDForOwner(id, username string) (*models.Job, error)
	UpdateStatus(id, username string, status models.JobStatus) (*models.Job, error)
}

// SkillProfileRepository defines the interface for skill profile data access.
type SkillProfileRepository interface {
	GetByUsername(username string) (*models.SkillProfile, error)
	Create(profile *models.SkillProfile) error
	Update(profile *models.SkillProfile) error
}
