package patients

import (
	patienthttp "github.com/anuj-kumar-30/patient-api/internal/http/patient"
)

// ListData is the response body containing one page of patient records.
type ListData struct {
	Patients []patienthttp.Patient `json:"patients" doc:"Page of patient records ordered by ID"`
	Total    int                   `json:"total"    doc:"Total count of records matching the filter" example:"5"`
}

// ListOutput is the response wrapper with the pagination Link header.
type ListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}
