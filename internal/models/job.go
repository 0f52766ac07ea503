package models

import "time"

// JobStatus is the lifecycle state of a job application.
type JobStatus string

const (
	StatusApplied      JobStatus = "Applied"
	StatusInterviewing JobStatus = "Interviewing"
	StatusOffered      JobStatus = "Offered"
	StatusRejected     JobStatus = "Rejected"
)

// JobStatuses lists every accepted status in display order.
var JobStatuses = []JobStatus{StatusApplied, StatusInterviewing, StatusOffered, StatusRejected}

// IsValid reports whether s is one of the accepted statuses.
// Any status may move to any other; there is no transition graph.
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Job represents a single job application owned by a user.
type Job struct {
	ID             string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Username       string    `json:"username" gorm:"index;type:varchar(50);not null"`
	CompanyName    string    `json:"companyName" gorm:"type:varchar(200);not null"`
	Role           string    `json:"role" gorm:"type:varchar(200);not null"`
	SkillsRequired string    `json:"skillsRequired" gorm:"type:text"`
	InterviewDate  time.Time `json:"interviewDate" gorm:"not null"`
	Status         JobStatus `json:"status" gorm:"type:varchar(20);not null;default:Applied"`
	CreatedAt      time.Time `json:"createdAt"`
}

// JobStats counts a user's applications per status.
type JobStats struct {
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offered      int `json:"offered"`
	Rejected     int `json:"rejected"`
	Total        int `json:"total"`
}
