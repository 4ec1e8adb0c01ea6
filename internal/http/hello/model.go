package hello

// Data models the response payload for the hello endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello World"`
}

// GetOutput is the response wrapper for the hello endpoint.
type GetOutput struct {
	Body Data
}
