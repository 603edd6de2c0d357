package repository

import (
	"testing"
	"time"

	"spacare-backend/models"
)

func newSale(t *testing.T, sales *Sales, customerID string, amount float64, date time.Time) models.Sale {
	t.Helper()
	created, err := sales.Create(models.Sale{
		CustomerID:    customerID,
		CustomerName:  "Khách " + customerID,
		PackageID:     "10-sessions",
		PackageType:   models.Package10Sessions,
		PackageName:   "Gói 10 Buổi",
		Amount:        amount,
		PaymentMethod: models.PaymentCash,
		SaleDate:      date,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return created
}

func TestSalesGetByDateRangeInclusiveBounds(t *testing.T) {
	sales := NewSales(newTestStore(t))

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

	onStart := newSale(t, sales, "customer_1", 86000, start)
	onEnd := newSale(t, sales, "customer_2", 86000, end)
	inside := newSale(t, sales, "customer_3", 86000, start.AddDate(0, 0, 15))
	newSale(t, sales, "customer_4", 86000, start.Add(-time.Second))
	newSale(t, sales, "customer_5", 86000, end.Add(time.Second))

	got := sales.GetByDateRange(start, end)
	if len(got) != 3 {
		t.Fatalf("GetByDateRange returned %d sales, want 3", len(got))
	}
	wantIDs := map[string]bool{onStart.ID: true, onEnd.ID: true, inside.ID: true}
	for _, sale := range got {
		if !wantIDs[sale.ID] {
			t.Errorf("unexpected sale %s in range", sale.ID)
		}
	}
}

func TestSalesGetMonthSales(t *testing.T) {
	sales := NewSales(newTestStore(t))

	july := newSale(t, sales, "customer_1", 1868000, time.Date(2026, 7, 10, 12, 0, 0, 0, time.Local))
	newSale(t, sales, "customer_2", 1868000, time.Date(2026, 6, 30, 23, 59, 59, 0, time.Local))
	lastInstant := newSale(t, sales, "customer_3", 86000, time.Date(2026, 7, 31, 23, 59, 59, 0, time.Local))

	got := sales.GetMonthSales(time.July, 2026)
	if len(got) != 2 {
		t.Fatalf("GetMonthSales returned %d sales, want 2", len(got))
	}
	if got[0].ID != july.ID || got[1].ID != lastInstant.ID {
		t.Errorf("GetMonthSales = %s,%s want %s,%s", got[0].ID, got[1].ID, july.ID, lastInstant.ID)
	}
}
