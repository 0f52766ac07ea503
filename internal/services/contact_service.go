package services

import (
	"log"
	"strings"
	"time"

	"jobtrack/internal/models"
	"jobtrack/pkg/rabbitmq"
)

// ContactService relays contact-form submissions to the support queue.
type ContactService struct {
	publisher EventPublisher
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(publisher EventPublisher) *ContactService {
	return &ContactService{publisher: publisher}
}

// Submit relays msg. Delivery is fire-and-forget; failures are only logged.
func (s *ContactService) Submit(msg models.ContactMessage) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.SubmittedAt = time.Now().UTC()
	if s.publisher == nil {
		log.Printf("Contact message from %s not relayed: messaging disabled", msg.Email)
		return
	}
	publish(s.publisher, rabbitmq.ContactMessagesQueue, msg)
}
