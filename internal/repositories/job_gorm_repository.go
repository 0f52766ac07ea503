package repositories

import (
	"errors"
	"fmt"

	"jobtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{db: db}
}

func (r *GORMJobRepository) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// ListByUsername returns the user's jobs in insertion order.
func (r *GORMJobRepository) ListByUsername(username string) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := r.db.Where("username = ?", username).Order("created_at asc").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs for %s: %w", username, err)
	}
	return jobs, nil
}

func (r *GORMJobRepository) GetByIDForOwner(id, username string) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ? AND username = ?", id, username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return &job, nil
}

// UpdateStatus changes the status of a job only when it belongs to username.
// A job owned by someone else is reported exactly like a missing one.
func (r *GORMJobRepository) UpdateStatus(id, username string, status models.JobStatus) (*models.Job, error) {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND username = ?", id, username).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update job %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return r.GetByIDForOwner(id, username)
}
