package services

import (
	"time"

	"jobtrack/internal/models"
)

// InterviewAlertWindow is how far ahead an interview counts as upcoming.
const InterviewAlertWindow = 24 * time.Hour

// UpcomingInterviews returns the jobs in Interviewing status whose interview falls in
// [now, now+InterviewAlertWindow], both ends inclusive. Input order is preserved.
func UpcomingInterviews(jobs []models.Job, now time.Time) []models.Job {
	deadline := now.Add(InterviewAlertWindow)
	upcoming := []models.Job{}
	for _, job := range jobs {
		if job.Status != models.StatusInterviewing {
			continue
		}
		if job.InterviewDate.Before(now) || job.InterviewDate.After(deadline) {
			continue
		}
		upcoming = append(upcoming, job)
	}
	return upcoming
}

// CountByStatus tallies jobs per status.
func CountByStatus(jobs []models.Job) models.JobStats {
	var stats models.JobStats
	for _, job := range jobs {
		switch job.Status {
		case models.StatusApplied:
			stats.Applied++
		case models.StatusInterviewing:
			stats.Interviewing++
		case models.StatusOffered:
			stats.Offered++
		case models.StatusRejected:
			stats.Rejected++
		}
		stats.Total++
	}
	return stats
}
