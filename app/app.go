package app

import (
	"context"
	"net/http"

	"github.com/soffa-projects/secrets-demo/adapters"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/log"
	"github.com/thoas/go-funk"
)

type builderConfig struct {
	appName        string
	appVersion     string
	envName        string
	projectID      string
	secretProvider string
	secretSource   f.SecretSource
	secretNames    []string
}

type AppBuilder struct {
	config builderConfig
}

type appImpl struct {
	router f.Router
	env    f.Env
}

func New(name string, version string, envName string) AppBuilder {
	return AppBuilder{
		config: builderConfig{
			appName:    name,
			appVersion: version,
			envName:    envName,
		},
	}
}

func (app AppBuilder) WithSecretProvider(provider string) AppBuilder {
	app.config.secretProvider = provider
	return app
}

// WithSecretSource injects a prebuilt source, bypassing the provider URL
// factory. Used by tests.
func (app AppBuilder) WithSecretSource(source f.SecretSource) AppBuilder {
	app.config.secretSource = source
	return app
}

func (app AppBuilder) WithProjectID(id string) AppBuilder {
	app.config.projectID = id
	return app
}

func (app AppBuilder) WithSecretNames(names ...string) AppBuilder {
	app.config.secretNames = names
	return app
}

// Init wires the secret source, warms the cache and registers every
// feature's routes. The cache is warm before Start ever listens.
func (app AppBuilder) Init(features []f.Feature) f.App {
	cfg := app.config
	production := cfg.envName == "production" || cfg.envName == "prod"

	source := cfg.secretSource
	if source == nil {
		source = adapters.NewSecretSource(cfg.secretProvider, cfg.projectID)
	}
	if err := source.Init(); err != nil {
		// a broken secret store degrades to absent secrets, it never stops the app
		log.Warn("secret source init failed: %v", err)
	}

	cache := adapters.NewSecretCache(source, cfg.secretNames...)
	cache.Warm(context.Background())

	env := f.Env{
		AppName:     cfg.appName,
		Version:     cfg.appVersion,
		Environment: cfg.envName,
		Production:  production,
		ProjectID:   cfg.projectID,
		Secrets:     source,
		Cache:       cache,
	}

	router := adapters.NewEchoRouter(f.RouterConfig{
		Env:   cfg.envName,
		Debug: !production,
	})

	for _, feature := range features {
		if feature.Init == nil {
			log.Fatal("feature %s has no init function", feature.Name)
		}
		feature.Init(f.InitContext{Env: env, Router: router})
	}

	if funk.IsEmpty(features) {
		log.Warn("no features registered")
	}

	return &appImpl{
		router: router,
		env:    env,
	}
}

func (app *appImpl) Start(port int) {
	defer app.Shutdown(context.Background())

	log.Info("starting webserver...")
	app.router.Listen(port)
}

func (app *appImpl) Handler() http.Handler {
	return app.router.Handler()
}

func (app *appImpl) Shutdown(ctx context.Context) {
	if err := app.router.Shutdown(ctx); err != nil {
		log.Error("error shutting down server: %v", err)
	}
	if err := app.env.Secrets.Close(); err != nil {
		log.Error("error shutting down secret source: %v", err)
	}
	app.env.Cache.Close()
	log.Info("shutdown complete")
}
