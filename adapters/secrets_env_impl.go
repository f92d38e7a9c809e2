package adapters

import (
	"context"
	"os"

	f "github.com/soffa-projects/secrets-demo/core"
)

// EnvSecretSource reads secrets straight from environment variables
// (db-password -> DB_PASSWORD). An unset or empty variable is absent.
type EnvSecretSource struct{}

func NewEnvSecretSource() *EnvSecretSource {
	return &EnvSecretSource{}
}

func (s *EnvSecretSource) Init() error {
	return nil
}

func (s *EnvSecretSource) Close() error {
	return nil
}

func (s *EnvSecretSource) Latest(_ context.Context, name string) (string, error) {
	value := os.Getenv(f.EnvName(name))
	if value == "" {
		return "", f.ErrSecretNotFound
	}
	return value, nil
}
