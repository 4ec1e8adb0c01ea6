package patient

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// fileRecord maps to the patients.json document structure, where the record
// ID is the object key rather than a field.
type fileRecord struct {
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// FileStore implements Service on top of a flat patients.json file. Reads
// always hit the file so out-of-band edits are picked up on the next request;
// mutations rewrite the whole file under a lock.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON file at path. A missing
// file is treated as an empty record set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]fileRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]fileRecord{}, nil
		}
		return nil, err
	}
	records := map[string]fileRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileStore) save(records map[string]fileRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// List returns all records keyed by patient ID.
func (s *FileStore) List(_ context.Context) (map[string]Patient, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	patients := make(map[string]Patient, len(records))
	for id, r := range records {
		patients[id] = toPatient(id, r)
	}
	return patients, nil
}

// Get returns a single record by ID.
func (s *FileStore) Get(_ context.Context, id string) (*Patient, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	r, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := toPatient(id, r)
	return &p, nil
}

// Create stores a new record, failing if the ID is taken.
func (s *FileStore) Create(_ context.Context, id string, params CreateParams) (*Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	if _, exists := records[id]; exists {
		return nil, ErrAlreadyExists
	}

	records[id] = fileRecord{
		Name:   params.Name,
		City:   params.City,
		Age:    params.Age,
		Gender: params.Gender,
		Height: params.Height,
		Weight: params.Weight,
	}
	if err := s.save(records); err != nil {
		return nil, err
	}
	p := toPatient(id, records[id])
	return &p, nil
}

// Update applies the non-nil fields to an existing record.
func (s *FileStore) Update(_ context.Context, id string, params UpdateParams) (*Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	r, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		r.Name = *params.Name
	}
	if params.City != nil {
		r.City = *params.City
	}
	if params.Age != nil {
		r.Age = *params.Age
	}
	if params.Gender != nil {
		r.Gender = *params.Gender
	}
	if params.Height != nil {
		r.Height = *params.Height
	}
	if params.Weight != nil {
		r.Weight = *params.Weight
	}

	records[id] = r
	if err := s.save(records); err != nil {
		return nil, err
	}
	p := toPatient(id, r)
	return &p, nil
}

// Delete removes a record by ID.
func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return ErrNotFound
	}
	delete(records, id)
	return s.save(records)
}

func toPatient(id string, r fileRecord) Patient {
	return Patient{
		ID:     id,
		Name:   r.Name,
		City:   r.City,
		Age:    r.Age,
		Gender: r.Gender,
		Height: r.Height,
		Weight: r.Weight,
	}
}

// Compile-time interface check
var _ Service = (*FileStore)(nil)
