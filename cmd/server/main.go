package main

import (
	"github.com/soffa-projects/secrets-demo/app"
	"github.com/soffa-projects/secrets-demo/config"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/hello"
	"github.com/soffa-projects/secrets-demo/log"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	log.Setup(cfg.Environment)

	instance := app.New("secrets-demo", version, cfg.Environment).
		WithSecretProvider(cfg.SecretProvider).
		WithProjectID(cfg.Project()).
		WithSecretNames(cfg.SecretNames...).
		Init([]f.Feature{
			hello.Feature(),
		})

	instance.Start(cfg.Port)
}
