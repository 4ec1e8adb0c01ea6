package patients

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	patienthttp "github.com/anuj-kumar-30/patient-api/internal/http/patient"
	"github.com/anuj-kumar-30/patient-api/internal/platform/pagination"
	patientsvc "github.com/anuj-kumar-30/patient-api/internal/service/patient"
)

const cursorType = "patient"

// Register wires the paginated patient listing into the provided API router.
func Register(api huma.API, svc patientsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-patients-paginated",
		Method:      http.MethodGet,
		Path:        "/v1/patients",
		Summary:     "List patients with cursor-based pagination",
		Description: "Returns a paginated list of patient records ordered by ID. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Patients"},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}

		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		records, err := svc.List(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		filtered := orderedRecords(records, input.City)

		if cursor.Value != "" && findIndex(filtered, cursor.Value) == -1 {
			return nil, huma.Error400BadRequest("cursor references unknown patient")
		}

		query := url.Values{}
		if input.City != "" {
			query.Set("city", input.City)
		}

		result := pagination.Paginate(
			filtered,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(p patienthttp.Patient) string { return p.ID },
			prefix+"/v1/patients",
			query,
		)

		return &ListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Patients: result.Items,
				Total:    result.Total,
			},
		}, nil
	})
}

// orderedRecords flattens the record map into an ID-ordered slice, applying
// the optional city filter. Cursor pagination needs a stable order.
func orderedRecords(records map[string]patientsvc.Patient, city string) []patienthttp.Patient {
	out := make([]patienthttp.Patient, 0, len(records))
	for id := range records {
		p := records[id]
		if city != "" && p.City != city {
			continue
		}
		out = append(out, patienthttp.FromRecord(&p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func findIndex(items []patienthttp.Patient, id string) int {
	return slices.IndexFunc(items, func(p patienthttp.Patient) bool { return p.ID == id })
}
