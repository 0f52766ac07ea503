package repositories

import (
	"fmt"
	"sync"
	"time"

	"jobtrack/internal/models"

	"github.com/google/uuid"
)

// MemoryJobRepository is an in-memory implementation of JobRepository.
// It keeps insertion order so listings match the SQL implementation.
type MemoryJobRepository struct {
	jobs  map[string]models.Job
	order []string
	mu    sync.RWMutex
}

// NewMemoryJobRepository creates a new instance of MemoryJobRepository.
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs: make(map[string]models.Job),
	}
}

func (r *MemoryJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("job %s: %w", job.ID, ErrDuplicate)
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = *job
	r.order = append(r.order, job.ID)
	return nil
}

func (r *MemoryJobRepository) ListByUsername(username string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := []models.Job{}
	for _, id := range r.order {
		if job := r.jobs[id]; job.Username == username {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *MemoryJobRepository) GetByIDForOwner(id, username string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok || job.Username != username {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return &job, nil
}

func (r *MemoryJobRepository) UpdateStatus(id, username string, status models.JobStatus) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.Username != username {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	job.Status = status
	r.jobs[id] = job
	return &job, nil
}
