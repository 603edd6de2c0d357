package repository

import (
	"spacare-backend/models"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

type CustomerPackages struct {
	store *storage.Store
}

func NewCustomerPackages(store *storage.Store) *CustomerPackages {
	return &CustomerPackages{store: store}
}

func (r *CustomerPackages) GetAll() []models.CustomerPackage {
	return readAll[models.CustomerPackage](r.store, storage.BucketCustomerPackages)
}

func (r *CustomerPackages) GetByID(id string) (models.CustomerPackage, error) {
	for _, pkg := range r.GetAll() {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return models.CustomerPackage{}, ErrNotFound
}

func (r *CustomerPackages) GetByCustomerID(customerID string) []models.CustomerPackage {
	var owned []models.CustomerPackage
	for _, pkg := range r.GetAll() {
		if pkg.CustomerID == customerID {
			owned = append(owned, pkg)
		}
	}
	return owned
}

// GetActiveByCustomerID returns the customer's packages that still have
// sessions to consume.
func (r *CustomerPackages) GetActiveByCustomerID(customerID string) []models.CustomerPackage {
	var active []models.CustomerPackage
	for _, pkg := range r.GetByCustomerID(customerID) {
		if pkg.Status == models.PackageStatusActive && pkg.SessionsRemaining > 0 {
			active = append(active, pkg)
		}
	}
	return active
}

func (r *CustomerPackages) Create(input models.CustomerPackage) (models.CustomerPackage, error) {
	input.ID = utils.NewID("package")

	err := r.store.Transaction(func(tx *storage.Store) error {
		packages := readAll[models.CustomerPackage](tx, storage.BucketCustomerPackages)
		packages = append(packages, input)
		return writeAll(tx, storage.BucketCustomerPackages, packages)
	})
	if err != nil {
		return models.CustomerPackage{}, err
	}
	return input, nil
}

// UpdateSessionCount sets sessionsUsed, recomputes sessionsRemaining from
// totalSessions, and flips the package to completed once nothing remains.
func (r *CustomerPackages) UpdateSessionCount(id string, sessionsUsed int) (models.CustomerPackage, error) {
	var updated models.CustomerPackage
	err := r.store.Transaction(func(tx *storage.Store) error {
		packages := readAll[models.CustomerPackage](tx, storage.BucketCustomerPackages)
		index := -1
		for i, pkg := range packages {
			if pkg.ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return ErrNotFound
		}

		pkg := &packages[index]
		pkg.SessionsUsed = sessionsUsed
		pkg.SessionsRemaining = pkg.TotalSessions - sessionsUsed
		if pkg.SessionsRemaining <= 0 {
			pkg.Status = models.PackageStatusCompleted
		}
		updated = *pkg

		return writeAll(tx, storage.BucketCustomerPackages, packages)
	})
	if err != nil {
		return models.CustomerPackage{}, err
	}
	return updated, nil
}
