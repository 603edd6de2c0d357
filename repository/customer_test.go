package repository

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"spacare-backend/models"
	"spacare-backend/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "spa.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCustomerCreateReadRoundTrip(t *testing.T) {
	customers := NewCustomers(newTestStore(t))

	created, err := customers.Create(models.Customer{
		Name:    "Nguyễn Thị Lan",
		Phone:   "0901234567",
		Address: "123 Nguyễn Du, Quận 1",
		Notes:   "Thích massage nhẹ nhàng",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == "" || !strings.HasPrefix(created.ID, "customer_") {
		t.Errorf("ID = %q, want customer_ prefix", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("CreatedAt/UpdatedAt not populated")
	}

	got, err := customers.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != created.Name || got.Phone != created.Phone ||
		got.Address != created.Address || got.Notes != created.Notes {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestCustomerGetByIDNotFound(t *testing.T) {
	customers := NewCustomers(newTestStore(t))

	if _, err := customers.GetByID("customer_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestCustomerUpdate(t *testing.T) {
	customers := NewCustomers(newTestStore(t))

	created, err := customers.Create(models.Customer{Name: "Trần Văn Minh", Phone: "0987654321"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Trần Minh"
	updated, err := customers.Update(created.ID, CustomerUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != name {
		t.Errorf("Name = %q, want %q", updated.Name, name)
	}
	if updated.Phone != created.Phone {
		t.Errorf("Phone changed to %q on a name-only update", updated.Phone)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt not advanced")
	}

	if _, err := customers.Update("customer_missing", CustomerUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update of missing id = %v, want ErrNotFound", err)
	}
}

func TestCustomerDelete(t *testing.T) {
	customers := NewCustomers(newTestStore(t))

	created, _ := customers.Create(models.Customer{Name: "Lê Thị Hương", Phone: "0912345678"})
	if err := customers.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := customers.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Error("customer still readable after delete")
	}
	if err := customers.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestCustomerSearch(t *testing.T) {
	customers := NewCustomers(newTestStore(t))

	customers.Create(models.Customer{Name: "Nguyễn Thị Lan", Phone: "0901234567", Address: "Quận 1"})
	customers.Create(models.Customer{Name: "Trần Văn Minh", Phone: "0987654321", Address: "Quận 3"})
	customers.Create(models.Customer{Name: "Hoàng Mai", Phone: "0901999888"})

	tests := []struct {
		term string
		want []string
	}{
		{"0901", []string{"Nguyễn Thị Lan", "Hoàng Mai"}},       // phone fragment
		{"trần văn", []string{"Trần Văn Minh"}},                 // name, case-insensitive
		{"quận", []string{"Nguyễn Thị Lan", "Trần Văn Minh"}},   // address
		{"không có", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, customer := range customers.Search(tt.term) {
			got = append(got, customer.Name)
		}
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
				break
			}
		}
	}
}
