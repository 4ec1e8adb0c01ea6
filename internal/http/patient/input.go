package patient

// GetInput identifies a single patient record.
type GetInput struct {
	PatientID string `path:"patient_id" doc:"ID of a patient in the DB" example:"P001"`
}

// SortInput defines query parameters for the sorted listing. Validation of
// the accepted values happens in the handler so invalid input maps to 400.
type SortInput struct {
	SortBy string `query:"sort_by" required:"true" doc:"Field to sort on: height, weight or bmi" example:"height"`
	Order  string `query:"order"   doc:"Sort order: asc or desc"                                 example:"asc"`
}

// CreateInput is the request body for creating a patient record.
type CreateInput struct {
	Body struct {
		ID     string  `json:"id"     doc:"ID of the patient"            example:"P001" minLength:"1" maxLength:"64"`
		Name   string  `json:"name"   doc:"Name of the patient"          example:"Ananya Sharma" minLength:"1" maxLength:"100"`
		City   string  `json:"city"   doc:"City where the patient lives" example:"Guwahati" minLength:"1" maxLength:"100"`
		Age    int     `json:"age"    doc:"Age of the patient"           example:"28" exclusiveMinimum:"0" maximum:"120"`
		Gender string  `json:"gender" doc:"Gender of the patient"        example:"female" enum:"male,female,others"`
		Height float64 `json:"height" doc:"Height in metres"             example:"1.65" exclusiveMinimum:"0"`
		Weight float64 `json:"weight" doc:"Weight in kilograms"          example:"90.0" exclusiveMinimum:"0"`
	}
}

// UpdateInput is the request body for partially updating a patient record.
// Only provided fields are applied.
type UpdateInput struct {
	PatientID string `path:"patient_id" doc:"ID of a patient in the DB" example:"P001"`
	Body      struct {
		Name   *string  `json:"name,omitempty"   doc:"Name of the patient"          minLength:"1" maxLength:"100"`
		City   *string  `json:"city,omitempty"   doc:"City where the patient lives" minLength:"1" maxLength:"100"`
		Age    *int     `json:"age,omitempty"    doc:"Age of the patient"           exclusiveMinimum:"0" maximum:"120"`
		Gender *string  `json:"gender,omitempty" doc:"Gender of the patient"        enum:"male,female,others"`
		Height *float64 `json:"height,omitempty" doc:"Height in metres"             exclusiveMinimum:"0"`
		Weight *float64 `json:"weight,omitempty" doc:"Weight in kilograms"          exclusiveMinimum:"0"`
	}
}

// DeleteInput identifies the patient record to remove.
type DeleteInput struct {
	PatientID string `path:"patient_id" doc:"ID of a patient in the DB" example:"P001"`
}
