package repository

import (
	"testing"

	"spacare-backend/models"
	"spacare-backend/storage"
)

func TestPackagesSeedDefaultCatalog(t *testing.T) {
	store := newTestStore(t)
	packages := NewPackages(store)

	got := packages.GetAll()
	if len(got) != len(models.DefaultPackages) {
		t.Fatalf("GetAll returned %d packages, want %d", len(got), len(models.DefaultPackages))
	}

	// The seed must be persisted, not recomputed per read.
	if data := string(store.Read(storage.BucketPackages)); data == "[]" {
		t.Error("default catalog not written to the bucket")
	}
	if again := packages.GetAll(); len(again) != len(got) {
		t.Errorf("second GetAll returned %d packages, want %d", len(again), len(got))
	}
}

func TestPackagesGetByID(t *testing.T) {
	packages := NewPackages(newTestStore(t))

	pkg, err := packages.GetByID("10-sessions")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if pkg.Name != "Gói 10 Buổi" || pkg.Sessions != 10 || pkg.Price != 1868000 {
		t.Errorf("unexpected catalog entry: %+v", pkg)
	}

	if _, err := packages.GetByID("missing"); err != ErrNotFound {
		t.Errorf("GetByID(missing) = %v, want ErrNotFound", err)
	}
}

func TestPackagesGetActive(t *testing.T) {
	store := newTestStore(t)
	packages := NewPackages(store)

	catalog := packages.GetAll()
	catalog[0].IsActive = false
	if err := writeAll(store, storage.BucketPackages, catalog); err != nil {
		t.Fatalf("writeAll: %v", err)
	}

	if got := packages.GetActive(); len(got) != len(catalog)-1 {
		t.Errorf("GetActive returned %d packages, want %d", len(got), len(catalog)-1)
	}
}
