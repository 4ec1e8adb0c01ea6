package patient

import (
	"context"
	"sync"
)

// MockPatientService implements Service for unit tests.
type MockPatientService struct {
	mu       sync.RWMutex
	patients map[string]Patient
}

// NewMockPatientService creates a new mock service.
func NewMockPatientService() *MockPatientService {
	return &MockPatientService{
		patients: make(map[string]Patient),
	}
}

func (m *MockPatientService) List(_ context.Context) (map[string]Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Patient, len(m.patients))
	for id, p := range m.patients {
		out[id] = p
	}
	return out, nil
}

func (m *MockPatientService) Get(_ context.Context, id string) (*Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.patients[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MockPatientService) Create(_ context.Context, id string, params CreateParams) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.patients[id]; exists {
		return nil, ErrAlreadyExists
	}

	p := Patient{
		ID:     id,
		Name:   params.Name,
		City:   params.City,
		Age:    params.Age,
		Gender: params.Gender,
		Height: params.Height,
		Weight: params.Weight,
	}
	m.patients[id] = p
	return &p, nil
}

func (m *MockPatientService) Update(_ context.Context, id string, params UpdateParams) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.patients[id]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.City != nil {
		p.City = *params.City
	}
	if params.Age != nil {
		p.Age = *params.Age
	}
	if params.Gender != nil {
		p.Gender = *params.Gender
	}
	if params.Height != nil {
		p.Height = *params.Height
	}
	if params.Weight != nil {
		p.Weight = *params.Weight
	}

	m.patients[id] = p
	return &p, nil
}

func (m *MockPatientService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.patients[id]; !exists {
		return ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

// Clear removes all patients (useful for test cleanup).
func (m *MockPatientService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patients = make(map[string]Patient)
}

// Compile-time interface check
var _ Service = (*MockPatientService)(nil)
