package config

import (
	"github.com/soffa-projects/secrets-demo/h"
	"github.com/soffa-projects/secrets-demo/log"
)

type Config struct {
	Environment    string   `envconfig:"ENVIRONMENT" default:"unknown"`
	Port           int      `envconfig:"PORT" default:"8080"`
	ProjectID      string   `envconfig:"GCP_PROJECT_ID"`
	GoogleProject  string   `envconfig:"GOOGLE_CLOUD_PROJECT"`
	SecretProvider string   `envconfig:"SECRET_PROVIDER" default:"gcp://"`
	SecretNames    []string `envconfig:"SECRET_NAMES" default:"db-password,api-key"`
}

// Project returns the configured project identifier, preferring
// GCP_PROJECT_ID over GOOGLE_CLOUD_PROJECT. Empty means not configured.
func (c Config) Project() string {
	if c.ProjectID != "" {
		return c.ProjectID
	}
	return c.GoogleProject
}

func Load() Config {
	var cfg Config
	if err := h.LoadEnv(&cfg); err != nil {
		log.Fatal("failed to load configuration: %v", err)
	}
	return cfg
}
