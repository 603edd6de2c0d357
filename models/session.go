package models

import "time"

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in-progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
	SessionNoShow     SessionStatus = "no-show"
)

// Session is one scheduled or completed therapy appointment, consuming one
// unit from a CustomerPackage. Status transitions are not validated; any
// status may replace any other, matching what the admin UI offers.
type Session struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	PackageID    string `json:"packageId"` // owning CustomerPackage id

	ScheduledDate time.Time  `json:"scheduledDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`

	Status        SessionStatus `json:"status"`
	Therapist     string        `json:"therapist,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	RoomNumber    string        `json:"roomNumber,omitempty"`
	SessionNumber int           `json:"sessionNumber"` // ordinal within the package
}
