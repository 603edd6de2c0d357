package repository

import (
	"spacare-backend/models"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

type ReminderLogs struct {
	store *storage.Store
}

func NewReminderLogs(store *storage.Store) *ReminderLogs {
	return &ReminderLogs{store: store}
}

func (r *ReminderLogs) GetAll() []models.ReminderLog {
	return readAll[models.ReminderLog](r.store, storage.BucketReminderLogs)
}

func (r *ReminderLogs) Create(input models.ReminderLog) (models.ReminderLog, error) {
	input.ID = utils.NewID("reminder")

	err := r.store.Transaction(func(tx *storage.Store) error {
		logs := readAll[models.ReminderLog](tx, storage.BucketReminderLogs)
		logs = append(logs, input)
		return writeAll(tx, storage.BucketReminderLogs, logs)
	})
	if err != nil {
		return models.ReminderLog{}, err
	}
	return input, nil
}
