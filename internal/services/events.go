package services

import (
	"log"
	"time"

	"jobtrack/pkg/rabbitmq"
)

// EventPublisher publishes a JSON message to a named queue.
type EventPublisher interface {
	PublishJSON(queue string, v interface{}) error
}

var _ EventPublisher = (*rabbitmq.Client)(nil)

// Event types published to the job events queue.
const (
	EventJobCreated       = "job.created"
	EventJobStatusUpdated = "job.status_updated"
)

// JobEvent is the message body published after a job write.
type JobEvent struct {
	Type       string    `json:"type"`
	JobID      string    `json:"jobId"`
	Username   string    `json:"username"`
	Company    string    `json:"companyName"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// publish sends v without failing the caller. A nil publisher means messaging is disabled.
func publish(p EventPublisher, queue string, v interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishJSON(queue, v); err != nil {
		log.Printf("Warning: failed to publish to %s: %v", queue, err)
	}
}
