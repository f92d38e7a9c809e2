package f

import (
	"context"
	"net/http"
)

type App interface {
	Start(port int)
	Shutdown(ctx context.Context)
	Handler() http.Handler
}

type AppInfo struct {
	Name    string
	Version string
}

// Env is the application environment handed to every feature at init time.
type Env struct {
	AppName     string
	Version     string
	Environment string
	Production  bool
	ProjectID   string
	Secrets     SecretSource
	Cache       SecretCache
}

type HttpRouter interface {
	GET(path string, handler func(c HttpContext) error)
	POST(path string, handler func(c HttpContext) error)
	DELETE(path string, handler func(c HttpContext) error)
	PUT(path string, handler func(c HttpContext) error)
}

type Feature struct {
	Name string
	Init func(c InitContext)
}

type InitContext struct {
	Env    Env
	Router HttpRouter
}

type HttpContext interface {
	context.Context

	Param(value string) string
	QueryParam(value string) string
	Header(value string) string
	RealIP() string

	JSON(status int, data any) error
	String(status int, data string) error
	NoContent() error
}
