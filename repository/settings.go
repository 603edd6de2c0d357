package repository

import (
	"spacare-backend/models"
	"spacare-backend/storage"
)

// Settings stores a single record as a one-element array in the settings
// bucket.
type Settings struct {
	store *storage.Store
}

func NewSettings(store *storage.Store) *Settings {
	return &Settings{store: store}
}

// Get returns the stored settings, or the defaults when none were saved.
func (r *Settings) Get() models.Settings {
	stored := readAll[models.Settings](r.store, storage.BucketSettings)
	if len(stored) == 0 {
		return models.DefaultSettings()
	}
	return stored[0]
}

func (r *Settings) Update(settings models.Settings) (models.Settings, error) {
	err := r.store.Transaction(func(tx *storage.Store) error {
		return writeAll(tx, storage.BucketSettings, []models.Settings{settings})
	})
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
