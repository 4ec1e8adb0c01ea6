package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store backend identifiers for PATIENT_STORE.
const (
	StoreFile      = "file"
	StoreFirestore = "firestore"
)

// Config holds runtime settings resolved from the environment.
type Config struct {
	Port                         string
	Store                        string
	PatientsFile                 string
	ProjectID                    string
	GoogleApplicationCredentials string
}

// Load reads an optional .env file, then resolves settings from environment
// variables with development-friendly defaults.
func Load() (*Config, error) {
	// Missing .env is fine; system environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                         getEnv("PORT", "8080"),
		Store:                        getEnv("PATIENT_STORE", StoreFile),
		PatientsFile:                 getEnv("PATIENTS_FILE", "patients.json"),
		ProjectID:                    os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}

	switch cfg.Store {
	case StoreFile, StoreFirestore:
	default:
		return nil, fmt.Errorf("unknown PATIENT_STORE %q (expected %q or %q)", cfg.Store, StoreFile, StoreFirestore)
	}

	if cfg.Store == StoreFirestore && cfg.ProjectID == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when PATIENT_STORE=%s", StoreFirestore)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
