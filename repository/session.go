package repository

import (
	"time"

	"spacare-backend/models"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

type Sessions struct {
	store *storage.Store
}

func NewSessions(store *storage.Store) *Sessions {
	return &Sessions{store: store}
}

func (r *Sessions) GetAll() []models.Session {
	return readAll[models.Session](r.store, storage.BucketSessions)
}

func (r *Sessions) GetByID(id string) (models.Session, error) {
	for _, session := range r.GetAll() {
		if session.ID == id {
			return session, nil
		}
	}
	return models.Session{}, ErrNotFound
}

// GetByDate returns sessions scheduled on the same calendar day as date.
func (r *Sessions) GetByDate(date time.Time) []models.Session {
	var matches []models.Session
	for _, session := range r.GetAll() {
		if utils.SameDay(session.ScheduledDate, date) {
			matches = append(matches, session)
		}
	}
	return matches
}

func (r *Sessions) GetByCustomerID(customerID string) []models.Session {
	var matches []models.Session
	for _, session := range r.GetAll() {
		if session.CustomerID == customerID {
			matches = append(matches, session)
		}
	}
	return matches
}

func (r *Sessions) GetByPackageID(packageID string) []models.Session {
	var matches []models.Session
	for _, session := range r.GetAll() {
		if session.PackageID == packageID {
			matches = append(matches, session)
		}
	}
	return matches
}

// GetByDateRange filters by scheduled date with inclusive bounds.
func (r *Sessions) GetByDateRange(start, end time.Time) []models.Session {
	var matches []models.Session
	for _, session := range r.GetAll() {
		if !session.ScheduledDate.Before(start) && !session.ScheduledDate.After(end) {
			matches = append(matches, session)
		}
	}
	return matches
}

func (r *Sessions) Create(input models.Session) (models.Session, error) {
	input.ID = utils.NewID("session")

	err := r.store.Transaction(func(tx *storage.Store) error {
		sessions := readAll[models.Session](tx, storage.BucketSessions)
		sessions = append(sessions, input)
		return writeAll(tx, storage.BucketSessions, sessions)
	})
	if err != nil {
		return models.Session{}, err
	}
	return input, nil
}

// UpdateStatus sets the status and, only when completedDate is supplied,
// stamps the completion date. Transitions are not validated: the workflow
// is linear in practice but any status may replace any other.
func (r *Sessions) UpdateStatus(id string, status models.SessionStatus, completedDate *time.Time) (models.Session, error) {
	var updated models.Session
	err := r.store.Transaction(func(tx *storage.Store) error {
		sessions := readAll[models.Session](tx, storage.BucketSessions)
		index := -1
		for i, session := range sessions {
			if session.ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return ErrNotFound
		}

		sessions[index].Status = status
		if completedDate != nil {
			sessions[index].CompletedDate = completedDate
		}
		updated = sessions[index]

		return writeAll(tx, storage.BucketSessions, sessions)
	})
	if err != nil {
		return models.Session{}, err
	}
	return updated, nil
}
