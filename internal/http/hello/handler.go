package hello

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/anuj-kumar-30/patient-api/internal/platform/logging"
)

// Register wires the hello route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/hello", getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Data{Message: "Hello World"}}, nil
}
