package models

import "time"

// ReminderLog records one attempted session reminder.
type ReminderLog struct {
	ID         string `json:"id"`
	SessionID  string `json:"sessionId"`
	CustomerID string `json:"customerId"`

	Message      string `json:"message"`
	Status       string `json:"status"` // sent, failed
	ErrorMessage string `json:"errorMessage,omitempty"`
	Channel      string `json:"channel"` // sms

	SentAt time.Time `json:"sentAt"`
}
