package patient

// ListOutput wraps the full record set keyed by patient ID, mirroring the
// on-disk document shape.
type ListOutput struct {
	Body map[string]Patient
}

// GetOutput wraps a single patient record.
type GetOutput struct {
	Body Patient
}

// SortOutput wraps the sorted record list.
type SortOutput struct {
	Body []Patient
}

// CreateOutput wraps the created record plus its Location.
type CreateOutput struct {
	Location string `header:"Location" doc:"URL of the created patient record"`
	Body     Patient
}

// UpdateOutput wraps the record after a partial update.
type UpdateOutput struct {
	Body Patient
}
