package adapters

import (
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/h"
	"github.com/soffa-projects/secrets-demo/log"
)

// NewSecretSource builds a secret source from a provider URL.
//
// Supported schemes:
//
//	gcp://[project-id]     Google Secret Manager (projectID fallback)
//	vault+https://token@host?mount=...&path=...
//	env://                 plain environment variables
//	faker://               in-memory source for tests
func NewSecretSource(provider string, projectID string) f.SecretSource {
	if provider == "" {
		provider = "env://"
	}
	cfg, err := h.ParseUrl(provider)
	if err != nil {
		log.Fatal("failed to parse secret provider: %v", err)
	}
	switch cfg.Scheme {
	case "gcp":
		if cfg.Host != "" {
			projectID = cfg.Host
		}
		return NewGcpSecretSource(projectID)
	case "vault+https", "vault+http":
		return NewVaultSecretSource(cfg)
	case "env":
		return NewEnvSecretSource()
	case "faker":
		return NewFakeSecretSource()
	default:
		log.Fatal("unsupported secret provider: %s", cfg.Scheme)
	}
	return nil
}
