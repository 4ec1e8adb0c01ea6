package patient

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sort"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/anuj-kumar-30/patient-api/internal/platform/logging"
	patientsvc "github.com/anuj-kumar-30/patient-api/internal/service/patient"
)

var sortFields = []string{"height", "weight", "bmi"}

// Register wires patient routes into the provided API router.
func Register(api huma.API, svc patientsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-patients",
		Method:      http.MethodGet,
		Path:        "/patient",
		Summary:     "List all patient records",
		Tags:        []string{"Patients"},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		records, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		body := make(map[string]Patient, len(records))
		for id, p := range records {
			body[id] = FromRecord(&p)
		}
		return &ListOutput{Body: body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-patient",
		Method:      http.MethodGet,
		Path:        "/patient/{patient_id}",
		Summary:     "Get details of a specific patient by ID",
		Tags:        []string{"Patients"},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		p, err := svc.Get(ctx, input.PatientID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &GetOutput{Body: FromRecord(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "sort-patients",
		Method:      http.MethodGet,
		Path:        "/sort",
		Summary:     "Sort patients by height, weight or BMI",
		Tags:        []string{"Patients"},
	}, func(ctx context.Context, input *SortInput) (*SortOutput, error) {
		if !slices.Contains(sortFields, input.SortBy) {
			return nil, huma.Error400BadRequest("invalid sort_by, select from height, weight or bmi")
		}
		order := input.Order
		if order == "" {
			order = "asc"
		}
		if order != "asc" && order != "desc" {
			return nil, huma.Error400BadRequest("invalid order, select asc or desc")
		}

		records, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}

		applog.LogInfo(ctx, "sorting patients",
			zap.String("sort_by", input.SortBy), zap.String("order", order))

		return &SortOutput{Body: sortPatients(records, input.SortBy, order)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-patient",
		Method:        http.MethodPost,
		Path:          "/patient",
		Summary:       "Create a patient record",
		Tags:          []string{"Patients"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
		p, err := svc.Create(ctx, input.Body.ID, patientsvc.CreateParams{
			Name:   input.Body.Name,
			City:   input.Body.City,
			Age:    input.Body.Age,
			Gender: input.Body.Gender,
			Height: input.Body.Height,
			Weight: input.Body.Weight,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CreateOutput{
			Location: "/patient/" + p.ID,
			Body:     FromRecord(p),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-patient",
		Method:      http.MethodPut,
		Path:        "/patient/{patient_id}",
		Summary:     "Update fields of a patient record",
		Description: "Updates fields on an existing patient. Only provided fields are applied.",
		Tags:        []string{"Patients"},
	}, func(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
		if !hasUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}
		p, err := svc.Update(ctx, input.PatientID, patientsvc.UpdateParams{
			Name:   input.Body.Name,
			City:   input.Body.City,
			Age:    input.Body.Age,
			Gender: input.Body.Gender,
			Height: input.Body.Height,
			Weight: input.Body.Weight,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UpdateOutput{Body: FromRecord(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-patient",
		Method:        http.MethodDelete,
		Path:          "/patient/{patient_id}",
		Summary:       "Delete a patient record",
		Tags:          []string{"Patients"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.PatientID); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

// sortPatients orders records by the requested field, falling back to the
// patient ID so equal values keep a stable order.
func sortPatients(records map[string]patientsvc.Patient, field, order string) []Patient {
	out := make([]Patient, 0, len(records))
	for id := range records {
		p := records[id]
		out = append(out, FromRecord(&p))
	}

	key := func(p Patient) float64 {
		switch field {
		case "height":
			return p.Height
		case "weight":
			return p.Weight
		default:
			return p.BMI
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki == kj {
			return out[i].ID < out[j].ID
		}
		if order == "desc" {
			return ki > kj
		}
		return ki < kj
	})
	return out
}

func hasUpdateFields(input *UpdateInput) bool {
	return input.Body.Name != nil ||
		input.Body.City != nil ||
		input.Body.Age != nil ||
		input.Body.Gender != nil ||
		input.Body.Height != nil ||
		input.Body.Weight != nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, patientsvc.ErrNotFound):
		return huma.Error404NotFound("Patient Not Found")
	case errors.Is(err, patientsvc.ErrAlreadyExists):
		return huma.Error409Conflict("patient already exists")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
