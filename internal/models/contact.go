package models

import "time"

// ContactMessage is a contact-form submission relayed to the support inbox.
type ContactMessage struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
