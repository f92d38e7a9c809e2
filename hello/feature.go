package hello

import (
	"fmt"
	"net/http"
	"strings"

	f "github.com/soffa-projects/secrets-demo/core"
)

const greeting = "Hello from the secrets demo service!"

func Feature() f.Feature {
	return f.Feature{
		Name: "hello",
		Init: func(c f.InitContext) {
			c.Router.GET("/", helloHandler(c.Env))
			c.Router.GET("/health", healthHandler(c.Env))
			c.Router.GET("/api/status", statusHandler(c.Env))
		},
	}
}

// helloHandler reports presence per secret through the cache's fallback
// read path, so a secret that arrived after startup still shows up here.
func helloHandler(env f.Env) func(c f.HttpContext) error {
	return func(c f.HttpContext) error {
		var b strings.Builder
		b.WriteString(greeting + "\n")
		fmt.Fprintf(&b, "Environment: %s\n", env.Environment)
		for _, name := range env.Cache.Names() {
			flag := "✗ no"
			if _, ok := env.Cache.Resolve(c, name); ok {
				flag = "✓ yes"
			}
			fmt.Fprintf(&b, "%s loaded: %s\n", f.EnvName(name), flag)
		}
		return c.String(http.StatusOK, b.String())
	}
}

func healthHandler(env f.Env) func(c f.HttpContext) error {
	return func(c f.HttpContext) error {
		return c.JSON(http.StatusOK, f.NewHealthCheck(env.AppName, env.Environment).Build())
	}
}

type StatusResponse struct {
	Status            string          `json:"status"`
	Environment       string          `json:"environment"`
	SecretsConfigured map[string]bool `json:"secrets_configured"`
	ProjectID         string          `json:"project_id"`
}

// statusHandler reads cache slots only. A secret that would resolve through
// a fallback fetch still reports false here until the process restarts.
func statusHandler(env f.Env) func(c f.HttpContext) error {
	return func(c f.HttpContext) error {
		configured := make(map[string]bool, len(env.Cache.Names()))
		for _, name := range env.Cache.Names() {
			configured[f.JsonName(name)] = env.Cache.Configured(name)
		}
		project := env.ProjectID
		if project == "" {
			project = "not-set"
		}
		return c.JSON(http.StatusOK, StatusResponse{
			Status:            "operational",
			Environment:       env.Environment,
			SecretsConfigured: configured,
			ProjectID:         project,
		})
	}
}
