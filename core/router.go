package f

import (
	"context"
	"net/http"
)

type RouterConfig struct {
	Env   string
	Debug bool
}

type Router interface {
	HttpRouter
	Handler() http.Handler
	Listen(port int)
	Shutdown(ctx context.Context) error
}
