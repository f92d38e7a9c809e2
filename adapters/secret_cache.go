package adapters

import (
	"context"

	"github.com/dgraph-io/ristretto/v2"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/log"
)

type secretCacheImpl struct {
	names  []string
	source f.SecretSource
	slots  *ristretto.Cache[string, string]
}

// NewSecretCache creates an empty cache with one slot per name. Slots are
// filled by Warm and never evicted afterwards (no TTL).
func NewSecretCache(source f.SecretSource, names ...string) f.SecretCache {
	if len(names) == 0 {
		names = f.DefaultSecretNames()
	}
	slots, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 100,
		MaxCost:     1 << 5,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatal("failed to create secret cache: %v", err)
	}
	return &secretCacheImpl{
		names:  names,
		source: source,
		slots:  slots,
	}
}

// Warm fetches every configured secret once. Failures are logged and leave
// the slot empty; they never abort startup.
func (c *secretCacheImpl) Warm(ctx context.Context) {
	for _, name := range c.names {
		value, err := c.source.Latest(ctx, name)
		if err != nil {
			log.Warn("secret %s not loaded: %v", name, err)
			continue
		}
		c.slots.Set(name, value, 1)
		log.Info("secret %s loaded", name)
	}
	// flush the set buffer so slots are visible before the server accepts traffic
	c.slots.Wait()
}

// Resolve returns the cached value when the slot is filled, otherwise falls
// back to a direct source read. The fallback result is intentionally not
// written back: concurrent requests racing on an empty slot may each hit
// the source, which is idempotent.
func (c *secretCacheImpl) Resolve(ctx context.Context, name string) (string, bool) {
	if value, ok := c.slots.Get(name); ok {
		return value, true
	}
	value, err := c.source.Latest(ctx, name)
	if err != nil {
		log.Debug("secret %s unresolved: %v", name, err)
		return "", false
	}
	return value, true
}

func (c *secretCacheImpl) Configured(name string) bool {
	_, ok := c.slots.Get(name)
	return ok
}

func (c *secretCacheImpl) Names() []string {
	return c.names
}

func (c *secretCacheImpl) Close() {
	c.slots.Close()
}
