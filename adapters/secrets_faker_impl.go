package adapters

import (
	"context"
	"sync"

	f "github.com/soffa-projects/secrets-demo/core"
)

// FakeSecretSource is an in-memory source for tests. Err, when set, makes
// every read fail, which is how tests simulate an unreachable store.
type FakeSecretSource struct {
	mu    sync.Mutex
	store map[string]string
	reads map[string]int
	Err   error
}

func NewFakeSecretSource() *FakeSecretSource {
	return &FakeSecretSource{
		store: make(map[string]string),
		reads: make(map[string]int),
	}
}

func (p *FakeSecretSource) Init() error {
	return nil
}

func (p *FakeSecretSource) Close() error {
	return nil
}

func (p *FakeSecretSource) Put(name string, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store[name] = value
}

func (p *FakeSecretSource) Delete(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.store, name)
}

// Reads reports how many times a name has been fetched.
func (p *FakeSecretSource) Reads(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads[name]
}

func (p *FakeSecretSource) Latest(_ context.Context, name string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reads[name]++
	if p.Err != nil {
		return "", p.Err
	}
	value, ok := p.store[name]
	if !ok {
		return "", f.ErrSecretNotFound
	}
	return value, nil
}
