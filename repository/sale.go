package repository

import (
	"time"

	"spacare-backend/models"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

// Sales is an append-only ledger; entries are never updated or deleted.
type Sales struct {
	store *storage.Store
}

func NewSales(store *storage.Store) *Sales {
	return &Sales{store: store}
}

func (r *Sales) GetAll() []models.Sale {
	return readAll[models.Sale](r.store, storage.BucketSales)
}

// GetByDateRange filters by sale date with inclusive bounds: a sale dated
// exactly on either boundary is included.
func (r *Sales) GetByDateRange(start, end time.Time) []models.Sale {
	var matches []models.Sale
	for _, sale := range r.GetAll() {
		if !sale.SaleDate.Before(start) && !sale.SaleDate.After(end) {
			matches = append(matches, sale)
		}
	}
	return matches
}

func (r *Sales) Create(input models.Sale) (models.Sale, error) {
	input.ID = utils.NewID("sale")

	err := r.store.Transaction(func(tx *storage.Store) error {
		sales := readAll[models.Sale](tx, storage.BucketSales)
		sales = append(sales, input)
		return writeAll(tx, storage.BucketSales, sales)
	})
	if err != nil {
		return models.Sale{}, err
	}
	return input, nil
}

func (r *Sales) GetTodaySales() []models.Sale {
	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)
	return r.GetByDateRange(today, tomorrow)
}

// GetMonthSales returns the sales of one calendar month. Month is 1-based;
// zero values default to the current month and year.
func (r *Sales) GetMonthSales(month time.Month, year int) []models.Sale {
	now := time.Now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return r.GetByDateRange(start, end)
}
