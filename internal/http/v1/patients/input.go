package patients

import "github.com/anuj-kumar-30/patient-api/internal/platform/pagination"

// ListInput defines query parameters for the paginated patient listing.
type ListInput struct {
	pagination.Params
	City string `query:"city" doc:"Filter by city" example:"Guwahati"`
}
