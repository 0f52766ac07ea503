package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/pkg/apperror"
	"jobtrack/pkg/rabbitmq"
)

// interviewDateLayouts are tried in order when parsing an interview date.
var interviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInterviewDate accepts RFC 3339, an HTML datetime-local value or a bare date.
// Values without a zone are read as UTC.
func ParseInterviewDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range interviewDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid interview date %q", value)
}

// NewJob is the caller-supplied part of a job application.
type NewJob struct {
	Username       string // optional; must match the caller when set
	CompanyName    string
	Role           string
	SkillsRequired string
	InterviewDate  time.Time
	Status         models.JobStatus // empty means Applied
}

// JobService manages a user's job applications.
type JobService struct {
	jobRepo   repositories.JobRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewJobService creates a new JobService. publisher may be nil.
func NewJobService(jobRepo repositories.JobRepository, publisher EventPublisher) *JobService {
	return &JobService{
		jobRepo:   jobRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// AddJob stores a new application owned by caller.
func (s *JobService) AddJob(caller string, in NewJob) (*models.Job, error) {
	if in.Username != "" && in.Username != caller {
		return nil, apperror.Forbidden("Cannot add a job for another user")
	}

	details := map[string]string{}
	company := strings.TrimSpace(in.CompanyName)
	role := strings.TrimSpace(in.Role)
	if company == "" {
		details["companyName"] = "is required"
	}
	if role == "" {
		details["role"] = "is required"
	}
	if in.InterviewDate.IsZero() {
		details["interviewDate"] = "is required"
	}
	status := in.Status
	if status == "" {
		status = models.StatusApplied
	} else if !status.IsValid() {
		details["status"] = "must be one of Applied, Interviewing, Offered, Rejected"
	}
	if len(details) > 0 {
		return nil, apperror.Validation("Invalid job", details)
	}

	job := &models.Job{
		Username:       caller,
		CompanyName:    company,
		Role:           role,
		SkillsRequired: strings.TrimSpace(in.SkillsRequired),
		InterviewDate:  in.InterviewDate.UTC(),
		Status:         status,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperror.Storage(fmt.Errorf("failed to create job: %w", err))
	}

	publish(s.publisher, rabbitmq.JobEventsQueue, s.event(EventJobCreated, job))
	return job, nil
}

// ListJobs returns every job owned by caller in insertion order.
func (s *JobService) ListJobs(caller string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByUsername(caller)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return jobs, nil
}

// UpdateStatus sets the status of one of caller's jobs. Any status may follow any other.
func (s *JobService) UpdateStatus(caller, jobID string, status models.JobStatus) (*models.Job, error) {
	if !status.IsValid() {
		return nil, apperror.Validation("Invalid status", map[string]string{
			"status": "must be one of Applied, Interviewing, Offered, Rejected",
		})
	}

	job, err := s.jobRepo.UpdateStatus(jobID, caller, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Storage(err)
	}

	publish(s.publisher, rabbitmq.JobEventsQueue, s.event(EventJobStatusUpdated, job))
	return job, nil
}

// Stats counts caller's jobs per status.
func (s *JobService) Stats(caller string) (*models.JobStats, error) {
	jobs, err := s.ListJobs(caller)
	if err != nil {
		return nil, err
	}
	stats := CountByStatus(jobs)
	return &stats, nil
}

// UpcomingInterviews lists caller's interviews due within the next 24 hours.
func (s *JobService) UpcomingInterviews(caller string) ([]models.Job, error) {
	jobs, err := s.ListJobs(caller)
	if err != nil {
		return nil, err
	}
	return UpcomingInterviews(jobs, s.now()), nil
}

func (s *JobService) event(kind string, job *models.Job) JobEvent {
	return JobEvent{
		Type:       kind,
		JobID:      job.ID,
		Username:   job.Username,
		Company:    job.CompanyName,
		Role:       job.Role,
		Status:     string(job.Status),
		OccurredAt: s.now().UTC(),
	}
}
