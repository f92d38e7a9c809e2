package adapters

import (
	"context"
	"errors"
	"testing"

	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/test"
)

func TestEnvSecretSource_ReadsEnvironment(t *testing.T) {
	assert := test.NewAssertions(t)
	t.Setenv("DB_PASSWORD", "hunter2")

	source := NewEnvSecretSource()
	assert.Nil(source.Init())

	value, err := source.Latest(context.Background(), f.SecretDBPassword)
	assert.Nil(err)
	assert.Equals(value, "hunter2")
}

func TestEnvSecretSource_UnsetVariableIsAbsent(t *testing.T) {
	assert := test.NewAssertions(t)
	t.Setenv("API_KEY", "")

	source := NewEnvSecretSource()
	_, err := source.Latest(context.Background(), f.SecretAPIKey)
	assert.True(errors.Is(err, f.ErrSecretNotFound))
}

func TestEnvSecretSource_VariablesAreIndependent(t *testing.T) {
	assert := test.NewAssertions(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("API_KEY", "abc123")

	source := NewEnvSecretSource()
	ctx := context.Background()

	_, err := source.Latest(ctx, f.SecretDBPassword)
	assert.True(errors.Is(err, f.ErrSecretNotFound))

	value, err := source.Latest(ctx, f.SecretAPIKey)
	assert.Nil(err)
	assert.Equals(value, "abc123")
}
