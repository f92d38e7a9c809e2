package hello_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/soffa-projects/secrets-demo/adapters"
	"github.com/soffa-projects/secrets-demo/app"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/hello"
	"github.com/soffa-projects/secrets-demo/test"
)

func newServer(t *testing.T, builder app.AppBuilder) (*httptest.Server, *test.RestClient) {
	t.Helper()
	instance := builder.Init([]f.Feature{hello.Feature()})
	srv := httptest.NewServer(instance.Handler())
	t.Cleanup(srv.Close)
	return srv, test.NewRestClient(t, srv.URL)
}

func newBuilder(source f.SecretSource) app.AppBuilder {
	return app.New("secrets-demo", "test", "test").WithSecretSource(source)
}

func TestHello_NoSecretsConfigured(t *testing.T) {
	assert := test.NewAssertions(t)
	_, client := newServer(t, newBuilder(adapters.NewFakeSecretSource()))

	body := client.Get("/").IsOk().Text()
	assert.Contains(body, "Hello from the secrets demo service!")
	assert.Contains(body, "Environment: test")
	assert.Contains(body, "DB_PASSWORD loaded: ✗ no")
	assert.Contains(body, "API_KEY loaded: ✗ no")
}

func TestHello_FlagsFlipIndependently(t *testing.T) {
	assert := test.NewAssertions(t)
	source := adapters.NewFakeSecretSource()
	source.Put(f.SecretDBPassword, "hunter2")
	_, client := newServer(t, newBuilder(source))

	body := client.Get("/").IsOk().Text()
	assert.Contains(body, "DB_PASSWORD loaded: ✓ yes")
	assert.Contains(body, "API_KEY loaded: ✗ no")
}

func TestHello_EnvVariant(t *testing.T) {
	assert := test.NewAssertions(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("API_KEY", "abc123")
	_, client := newServer(t, newBuilder(adapters.NewEnvSecretSource()))

	body := client.Get("/").IsOk().Text()
	assert.Contains(body, "DB_PASSWORD loaded: ✗ no")
	assert.Contains(body, "API_KEY loaded: ✓ yes")
}

func TestHello_FallbackReadSeesLateSecret(t *testing.T) {
	assert := test.NewAssertions(t)
	source := adapters.NewFakeSecretSource()
	_, client := newServer(t, newBuilder(source))

	// secret appears after the cache was warmed
	source.Put(f.SecretAPIKey, "abc123")

	body := client.Get("/").IsOk().Text()
	assert.Contains(body, "API_KEY loaded: ✓ yes")

	// the status endpoint reads slots only, so it still reports false
	client.Get("/api/status").IsOk().JSON().MatchShape(`{
		"status": "#string",
		"environment": "#string",
		"secrets_configured": {"api_key": false, "db_password": false},
		"project_id": "#string"
	}`)
}

func TestHealth_AlwaysHealthy(t *testing.T) {
	source := adapters.NewFakeSecretSource()
	source.Err = errors.New("store unreachable")
	_, client := newServer(t, newBuilder(source))

	client.Get("/health").IsOk().JSON().
		Match(`{"status":"healthy","service":"secrets-demo","environment":"test"}`)
}

func TestStatus_ReflectsWarmState(t *testing.T) {
	source := adapters.NewFakeSecretSource()
	source.Put(f.SecretDBPassword, "hunter2")
	_, client := newServer(t, newBuilder(source))

	client.Get("/api/status").IsOk().JSON().Match(`{
		"status": "operational",
		"environment": "test",
		"secrets_configured": {"db_password": true, "api_key": false},
		"project_id": "not-set"
	}`)
}

func TestStatus_ProjectID(t *testing.T) {
	source := adapters.NewFakeSecretSource()
	_, client := newServer(t, newBuilder(source).WithProjectID("demo-project"))

	res := client.Get("/api/status").IsOk().JSON()
	assert := test.NewAssertions(t)
	assert.Equals(res.Value().Get("project_id"), "demo-project")
}

func TestNotFound_Body(t *testing.T) {
	_, client := newServer(t, newBuilder(adapters.NewFakeSecretSource()))

	client.Get("/nope").Is(http.StatusNotFound).JSON().
		Match(`{"error":"Not Found","message":"The requested endpoint does not exist"}`)
}

func TestHello_ConcurrentColdRequests(t *testing.T) {
	assert := test.NewAssertions(t)
	source := adapters.NewFakeSecretSource()
	srv, _ := newServer(t, newBuilder(source))

	const requests = 20
	results := make(chan int, requests)
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(srv.URL + "/")
			if err != nil {
				results <- 0
				return
			}
			resp.Body.Close()
			results <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(results)

	for status := range results {
		assert.Equals(status, http.StatusOK)
	}
	// warm fetched each name once, every request added its own fallback read
	assert.Equals(source.Reads(f.SecretDBPassword), requests+1)
	assert.Equals(source.Reads(f.SecretAPIKey), requests+1)
}
