// Package index serves the endpoint directory at the API root.
package index

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/anuj-kumar-30/patient-api/internal/platform/logging"
)

// Register wires the index route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/", getHandler)
}

// GetOutput is the response wrapper for the index endpoint. The body maps
// each route path to its description.
type GetOutput struct {
	Body map[string]string
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "index get", zap.String("path", "/"))
	return &GetOutput{Body: map[string]string{
		"/":      "list of the api endpoints",
		"/hello": "here you get the response as Hello World",
	}}, nil
}
