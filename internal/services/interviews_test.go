package services_test

import (
	"testing"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/services"

	"github.com/stretchr/testify/assert"
)

func interviewAt(id string, at time.Time, status models.JobStatus) models.Job {
	return models.Job{ID: id, InterviewDate: at, Status: status}
}

func TestUpcomingInterviewsBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	jobs := []models.Job{
		interviewAt("now", now, models.StatusInterviewing),
		interviewAt("edge", now.Add(24*time.Hour), models.StatusInterviewing),
		interviewAt("past-edge", now.Add(24*time.Hour+time.Second), models.StatusInterviewing),
		interviewAt("past", now.Add(-time.Second), models.StatusInterviewing),
		interviewAt("applied", now.Add(time.Hour), models.StatusApplied),
		interviewAt("mid", now.Add(12*time.Hour), models.StatusInterviewing),
	}

	got := services.UpcomingInterviews(jobs, now)

	ids := make([]string, 0, len(got))
	for _, job := range got {
		ids = append(ids, job.ID)
	}
	assert.Equal(t, []string{"now", "edge", "mid"}, ids)
}

func TestUpcomingInterviewsOnlyInterviewingStatus(t *testing.T) {
	now := time.Now()
	in := now.Add(time.Hour)
	for _, status := range models.JobStatuses {
		got := services.UpcomingInterviews([]models.Job{interviewAt("x", in, status)}, now)
		if status == models.StatusInterviewing {
			assert.Len(t, got, 1)
		} else {
			assert.Empty(t, got, string(status))
		}
	}
}

func TestUpcomingInterviewsEmpty(t *testing.T) {
	got := services.UpcomingInterviews(nil, time.Now())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCountByStatus(t *testing.T) {
	stats := services.CountByStatus([]models.Job{
		{Status: models.StatusOffered},
		{Status: models.StatusOffered},
		{Status: models.StatusRejected},
	})
	assert.Equal(t, models.JobStats{Offered: 2, Rejected: 1, Total: 3}, stats)
}
