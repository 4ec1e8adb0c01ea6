package patient

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/anuj-kumar-30/patient-api/internal/platform/logging"
)

const patientsCollection = "patients"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestorePatient maps to the Firestore document structure.
type firestorePatient struct {
	Name   string  `firestore:"name"`
	City   string  `firestore:"city"`
	Age    int     `firestore:"age"`
	Gender string  `firestore:"gender"`
	Height float64 `firestore:"height"`
	Weight float64 `firestore:"weight"`
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// List returns all patient documents keyed by ID.
func (s *FirestoreStore) List(ctx context.Context) (map[string]Patient, error) {
	docs, err := s.client.Collection(patientsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	patients := make(map[string]Patient, len(docs))
	for _, doc := range docs {
		var fp firestorePatient
		if err := doc.DataTo(&fp); err != nil {
			return nil, err
		}
		patients[doc.Ref.ID] = fromFirestore(doc.Ref.ID, fp)
	}
	return patients, nil
}

// Get retrieves a patient by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Patient, error) {
	doc, err := s.client.Collection(patientsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestorePatient
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	p := fromFirestore(id, fp)
	return &p, nil
}

// Create creates a new patient using a transaction to prevent duplicates.
func (s *FirestoreStore) Create(ctx context.Context, id string, params CreateParams) (*Patient, error) {
	docRef := s.client.Collection(patientsCollection).Doc(id)

	var result *Patient

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fp := firestorePatient{
			Name:   params.Name,
			City:   params.City,
			Age:    params.Age,
			Gender: params.Gender,
			Height: params.Height,
			Weight: params.Weight,
		}

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		p := fromFirestore(id, fp)
		result = &p
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", "patient", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", "patient", id, "success", nil)

	return result, nil
}

// Update updates a patient using a transaction for atomicity.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Patient, error) {
	docRef := s.client.Collection(patientsCollection).Doc(id)

	var result *Patient

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestorePatient
		if err := doc.DataTo(&fp); err != nil {
			return err
		}

		if params.Name != nil {
			fp.Name = *params.Name
		}
		if params.City != nil {
			fp.City = *params.City
		}
		if params.Age != nil {
			fp.Age = *params.Age
		}
		if params.Gender != nil {
			fp.Gender = *params.Gender
		}
		if params.Height != nil {
			fp.Height = *params.Height
		}
		if params.Weight != nil {
			fp.Weight = *params.Weight
		}

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		p := fromFirestore(id, fp)
		result = &p
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", "patient", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", "patient", id, "success", nil)

	return result, nil
}

// Delete removes a patient document, reporting ErrNotFound for unknown IDs.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	docRef := s.client.Collection(patientsCollection).Doc(id)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		if !doc.Exists() {
			return ErrNotFound
		}
		return tx.Delete(docRef)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", "patient", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "delete", "patient", id, "success", nil)

	return nil
}

func fromFirestore(id string, fp firestorePatient) Patient {
	return Patient{
		ID:     id,
		Name:   fp.Name,
		City:   fp.City,
		Age:    fp.Age,
		Gender: fp.Gender,
		Height: fp.Height,
		Weight: fp.Weight,
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
