package repository

import (
	"strings"
	"time"

	"spacare-backend/models"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

type Customers struct {
	store *storage.Store
}

func NewCustomers(store *storage.Store) *Customers {
	return &Customers{store: store}
}

// CustomerUpdate carries the fields an update may change; nil fields are
// left as stored.
type CustomerUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	Notes   *string
}

func (r *Customers) GetAll() []models.Customer {
	return readAll[models.Customer](r.store, storage.BucketCustomers)
}

// GetByID returns ErrNotFound for an unknown id; callers decide whether
// that is an error or a redirect.
func (r *Customers) GetByID(id string) (models.Customer, error) {
	for _, customer := range r.GetAll() {
		if customer.ID == id {
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// GetByPhone matches the exact stored phone string.
func (r *Customers) GetByPhone(phone string) (models.Customer, error) {
	for _, customer := range r.GetAll() {
		if customer.Phone == phone {
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

func (r *Customers) Create(input models.Customer) (models.Customer, error) {
	now := time.Now()
	input.ID = utils.NewID("customer")
	input.CreatedAt = now
	input.UpdatedAt = now

	err := r.store.Transaction(func(tx *storage.Store) error {
		customers := readAll[models.Customer](tx, storage.BucketCustomers)
		customers = append(customers, input)
		return writeAll(tx, storage.BucketCustomers, customers)
	})
	if err != nil {
		return models.Customer{}, err
	}
	return input, nil
}

func (r *Customers) Update(id string, update CustomerUpdate) (models.Customer, error) {
	var updated models.Customer
	err := r.store.Transaction(func(tx *storage.Store) error {
		customers := readAll[models.Customer](tx, storage.BucketCustomers)
		index := -1
		for i, customer := range customers {
			if customer.ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return ErrNotFound
		}

		customer := &customers[index]
		if update.Name != nil {
			customer.Name = *update.Name
		}
		if update.Phone != nil {
			customer.Phone = *update.Phone
		}
		if update.Address != nil {
			customer.Address = *update.Address
		}
		if update.Notes != nil {
			customer.Notes = *update.Notes
		}
		customer.UpdatedAt = time.Now()
		updated = *customer

		return writeAll(tx, storage.BucketCustomers, customers)
	})
	if err != nil {
		return models.Customer{}, err
	}
	return updated, nil
}

// Delete removes a customer record. The admin UI never calls this in the
// normal flow, but the operation exists.
func (r *Customers) Delete(id string) error {
	return r.store.Transaction(func(tx *storage.Store) error {
		customers := readAll[models.Customer](tx, storage.BucketCustomers)
		filtered := customers[:0:0]
		for _, customer := range customers {
			if customer.ID != id {
				filtered = append(filtered, customer)
			}
		}
		if len(filtered) == len(customers) {
			return ErrNotFound
		}
		return writeAll(tx, storage.BucketCustomers, filtered)
	})
}

// Search does a case-insensitive substring match over name, phone and
// address.
func (r *Customers) Search(term string) []models.Customer {
	term = strings.ToLower(term)

	var matches []models.Customer
	for _, customer := range r.GetAll() {
		if strings.Contains(strings.ToLower(customer.Name), term) ||
			strings.Contains(customer.Phone, term) ||
			(customer.Address != "" && strings.Contains(strings.ToLower(customer.Address), term)) {
			matches = append(matches, customer)
		}
	}
	return matches
}
