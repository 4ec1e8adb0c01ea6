package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/anuj-kumar-30/patient-api/internal/config"
	"github.com/anuj-kumar-30/patient-api/internal/http/health"
	"github.com/anuj-kumar-30/patient-api/internal/http/routes"
	appfirebase "github.com/anuj-kumar-30/patient-api/internal/platform/firebase"
	applog "github.com/anuj-kumar-30/patient-api/internal/platform/logging"
	appmiddleware "github.com/anuj-kumar-30/patient-api/internal/platform/middleware"
	"github.com/anuj-kumar-30/patient-api/internal/platform/respond"
	patientsvc "github.com/anuj-kumar-30/patient-api/internal/service/patient"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load error", err)
	}

	svc, cleanup, err := buildStore(context.Background(), cfg)
	if err != nil {
		applog.LogFatal(context.Background(), "store init error", err, zap.String("store", cfg.Store))
	}
	defer cleanup()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	humaCfg := huma.DefaultConfig("Patient Details API", Version)
	humaCfg.DocsPath = "/api-docs"
	// Response bodies must stay exactly the documented payloads. The default
	// create hook installs the schema-link transformer, which injects a
	// $schema field into struct-bodied responses, so drop the hooks.
	humaCfg.CreateHooks = nil
	humaCfg.Transformers = nil
	api := humachi.New(router, humaCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	routes.Register(api, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// buildStore selects the patient store backend from configuration. The
// returned cleanup releases any held clients and is safe to call once.
func buildStore(ctx context.Context, cfg *config.Config) (patientsvc.Service, func(), error) {
	switch cfg.Store {
	case config.StoreFirestore:
		clients, err := appfirebase.InitializeClients(ctx, appfirebase.Config{
			ProjectID:                    cfg.ProjectID,
			GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := clients.Close(); err != nil {
				applog.LogError(context.Background(), "firestore close error", err)
			}
		}
		return patientsvc.NewFirestoreStore(clients.Firestore), cleanup, nil
	default:
		return patientsvc.NewFileStore(cfg.PatientsFile), func() {}, nil
	}
}
