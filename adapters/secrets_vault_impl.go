package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/vault-client-go"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/h"
	"github.com/soffa-projects/secrets-demo/log"
)

// VaultSecretSource reads secrets from a KV v2 mount. Each secret name is a
// key inside the single secret document at the configured path.
type VaultSecretSource struct {
	path   string
	mount  string
	token  string
	client *vault.Client
}

func NewVaultSecretSource(cfg h.Url) *VaultSecretSource {
	token := cfg.User
	path := cfg.Query("path")
	mount := cfg.Query("mount")
	if token == "" {
		log.Fatal("[vault] token is required")
	}
	if path == "" {
		log.Fatal("[vault] path is required")
	}
	if mount == "" {
		log.Fatal("[vault] mount is required")
	}

	address := fmt.Sprintf("%s://%s", strings.TrimPrefix(cfg.Scheme, "vault+"), cfg.Host)
	client, err := vault.New(
		vault.WithAddress(address),
		vault.WithRequestTimeout(30*time.Second),
	)
	if err != nil {
		log.Fatal("[vault] failed to create client: %v", err)
	}
	return &VaultSecretSource{
		mount:  mount,
		path:   path,
		token:  token,
		client: client,
	}
}

func (v *VaultSecretSource) Init() error {
	if err := v.client.SetToken(v.token); err != nil {
		return err
	}
	log.Info("[vault] secret source installed")
	return nil
}

func (v *VaultSecretSource) Close() error {
	return nil
}

func (v *VaultSecretSource) Latest(ctx context.Context, name string) (string, error) {
	s, err := v.client.Secrets.KvV2Read(ctx, v.path, vault.WithMountPath(v.mount))
	if err != nil {
		return "", fmt.Errorf("[vault] failed to read %s: %w", v.path, err)
	}
	value, ok := s.Data.Data[name]
	if !ok {
		return "", f.ErrSecretNotFound
	}
	return fmt.Sprintf("%v", value), nil
}
