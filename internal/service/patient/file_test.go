package patient

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupFileStore(t *testing.T) *FileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "patients.json")
	seed := `{
  "P001": {"name": "Ananya Sharma", "city": "Guwahati", "age": 28, "gender": "female", "height": 1.65, "weight": 90.0},
  "P002": {"name": "Ravi Mehta", "city": "Mumbai", "age": 35, "gender": "male", "height": 1.75, "weight": 85.0}
}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return NewFileStore(path)
}

func TestFileStoreList(t *testing.T) {
	store := setupFileStore(t)

	patients, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(patients))
	}

	p, ok := patients["P001"]
	if !ok {
		t.Fatal("expected P001 in listing")
	}
	if p.ID != "P001" {
		t.Errorf("expected ID P001, got %s", p.ID)
	}
	if p.Name != "Ananya Sharma" {
		t.Errorf("expected name Ananya Sharma, got %s", p.Name)
	}
	if p.City != "Guwahati" {
		t.Errorf("expected city Guwahati, got %s", p.City)
	}
}

func TestFileStoreListMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	patients, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 0 {
		t.Errorf("expected empty record set, got %d patients", len(patients))
	}
}

func TestFileStoreListMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patients.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	store := NewFileStore(path)

	if _, err := store.List(context.Background()); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestFileStoreGet(t *testing.T) {
	store := setupFileStore(t)

	p, err := store.Get(context.Background(), "P002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ravi Mehta" {
		t.Errorf("expected name Ravi Mehta, got %s", p.Name)
	}
	if p.Gender != "male" {
		t.Errorf("expected gender male, got %s", p.Gender)
	}
}

func TestFileStoreGetNotFound(t *testing.T) {
	store := setupFileStore(t)

	_, err := store.Get(context.Background(), "P999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreCreate(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	p, err := store.Create(ctx, "P003", CreateParams{
		Name:   "Sneha Kulkarni",
		City:   "Pune",
		Age:    22,
		Gender: "female",
		Height: 1.58,
		Weight: 45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "P003" {
		t.Errorf("expected ID P003, got %s", p.ID)
	}

	// The record must survive a fresh read from disk.
	got, err := store.Get(ctx, "P003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Sneha Kulkarni" {
		t.Errorf("expected name Sneha Kulkarni, got %s", got.Name)
	}
}

func TestFileStoreCreateAlreadyExists(t *testing.T) {
	store := setupFileStore(t)

	_, err := store.Create(context.Background(), "P001", CreateParams{Name: "Duplicate"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFileStoreUpdate(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	city := "Bengaluru"
	weight := 80.0
	p, err := store.Update(ctx, "P002", UpdateParams{City: &city, Weight: &weight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.City != "Bengaluru" {
		t.Errorf("expected city Bengaluru, got %s", p.City)
	}
	if p.Weight != 80 {
		t.Errorf("expected weight 80, got %v", p.Weight)
	}
	// Untouched fields keep their values.
	if p.Name != "Ravi Mehta" {
		t.Errorf("expected name Ravi Mehta, got %s", p.Name)
	}

	got, err := store.Get(ctx, "P002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.City != "Bengaluru" {
		t.Errorf("expected persisted city Bengaluru, got %s", got.City)
	}
}

func TestFileStoreUpdateNotFound(t *testing.T) {
	store := setupFileStore(t)

	name := "Nobody"
	_, err := store.Update(context.Background(), "P999", UpdateParams{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	if err := store.Delete(ctx, "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := store.Get(ctx, "P001")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	patients, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 {
		t.Errorf("expected 1 patient after delete, got %d", len(patients))
	}
}

func TestFileStoreDeleteNotFound(t *testing.T) {
	store := setupFileStore(t)

	err := store.Delete(context.Background(), "P999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
