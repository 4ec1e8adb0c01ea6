package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/anuj-kumar-30/patient-api/internal/http/hello"
	"github.com/anuj-kumar-30/patient-api/internal/http/index"
	patienthandler "github.com/anuj-kumar-30/patient-api/internal/http/patient"
	"github.com/anuj-kumar-30/patient-api/internal/http/v1/patients"
	patientsvc "github.com/anuj-kumar-30/patient-api/internal/service/patient"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svc patientsvc.Service) {
	prefix := apiPrefix(api)

	index.Register(api)
	hello.Register(api)
	patienthandler.Register(api, svc)
	patients.Register(api, svc, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
