package f

import (
	"context"
	"errors"
	"strings"
)

// Well-known secret names. The cache accepts any list of names; these two
// are the defaults the service ships with.
const (
	SecretDBPassword = "db-password"
	SecretAPIKey     = "api-key"
)

func DefaultSecretNames() []string {
	return []string{SecretDBPassword, SecretAPIKey}
}

var ErrSecretNotFound = errors.New("secret not found")

// EnvName maps a secret name to its environment variable form
// (db-password -> DB_PASSWORD).
func EnvName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// JsonName maps a secret name to its JSON field form
// (db-password -> db_password).
func JsonName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// SecretSource reads the latest version of a named secret from an external
// store. Implementations must treat not-found as ErrSecretNotFound.
type SecretSource interface {
	Init() error
	Close() error
	Latest(ctx context.Context, name string) (string, error)
}

// SecretCache holds one slot per secret name for the process lifetime.
//
// Warm populates the slots once at startup; a slot that stays empty can
// still be served by Resolve through a fallback source read, but that read
// is never written back. Configured reports slot state only.
type SecretCache interface {
	Warm(ctx context.Context)
	Resolve(ctx context.Context, name string) (string, bool)
	Configured(name string) bool
	Names() []string
	Close()
}
