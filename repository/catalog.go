package repository

import (
	"spacare-backend/models"
	"spacare-backend/storage"
)

// Packages serves the catalog bucket. It is read-mostly reference data
// populated once from the default catalog.
type Packages struct {
	store *storage.Store
}

func NewPackages(store *storage.Store) *Packages {
	return &Packages{store: store}
}

// GetAll returns the catalog, writing the default catalog into the bucket
// first when it is empty.
func (r *Packages) GetAll() []models.Package {
	packages := readAll[models.Package](r.store, storage.BucketPackages)
	if len(packages) > 0 {
		return packages
	}
	if err := writeAll(r.store, storage.BucketPackages, models.DefaultPackages); err != nil {
		// Serve the defaults anyway; the next read will retry the seed.
		return models.DefaultPackages
	}
	return models.DefaultPackages
}

func (r *Packages) GetByID(id string) (models.Package, error) {
	for _, pkg := range r.GetAll() {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return models.Package{}, ErrNotFound
}

func (r *Packages) GetActive() []models.Package {
	var active []models.Package
	for _, pkg := range r.GetAll() {
		if pkg.IsActive {
			active = append(active, pkg)
		}
	}
	return active
}
