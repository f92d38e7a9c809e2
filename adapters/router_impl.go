package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prettylogger "github.com/rdbell/echo-pretty-logger"
	"github.com/ztrue/tracerr"

	f "github.com/soffa-projects/secrets-demo/core"
	apperrors "github.com/soffa-projects/secrets-demo/errors"
	"github.com/soffa-projects/secrets-demo/log"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var notFoundBody = ErrorResponse{
	Error:   "Not Found",
	Message: "The requested endpoint does not exist",
}

var internalErrorBody = ErrorResponse{
	Error:   "Internal Server Error",
	Message: "An unexpected error occurred",
}

type routerImpl struct {
	internal *echo.Echo
}

func NewEchoRouter(cfg f.RouterConfig) f.Router {
	e := echo.New()
	e.HideBanner = true
	e.Use(prettylogger.Logger)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogLevel: 2,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			if cfg.Debug {
				tracerr.PrintSourceColor(tracerr.Wrap(err))
			}
			return err
		},
	}))
	e.Use(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())

	// Unmatched routes and handler failures share one JSON shape. The
	// underlying error only ever reaches the logs, never the response body.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
			_ = c.JSON(http.StatusNotFound, notFoundBody)
			return
		}
		if apperrors.GetStatusCode(err) == http.StatusNotFound {
			_ = c.JSON(http.StatusNotFound, notFoundBody)
			return
		}
		log.Error("request %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
		_ = c.JSON(http.StatusInternalServerError, internalErrorBody)
	}

	return &routerImpl{internal: e}
}

func (r *routerImpl) Handler() http.Handler {
	return r.internal
}

func (r *routerImpl) Listen(port int) {
	if port == 0 {
		port = 8080
	}
	err := r.internal.Start(fmt.Sprintf(":%d", port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("failed to start server: %v", err)
	}
}

func (r *routerImpl) Shutdown(ctx context.Context) error {
	return r.internal.Shutdown(ctx)
}

func (r *routerImpl) GET(path string, handler func(c f.HttpContext) error) {
	r.internal.GET(path, wrap(handler))
}

func (r *routerImpl) POST(path string, handler func(c f.HttpContext) error) {
	r.internal.POST(path, wrap(handler))
}

func (r *routerImpl) DELETE(path string, handler func(c f.HttpContext) error) {
	r.internal.DELETE(path, wrap(handler))
}

func (r *routerImpl) PUT(path string, handler func(c f.HttpContext) error) {
	r.internal.PUT(path, wrap(handler))
}

func wrap(handler func(c f.HttpContext) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler(&ctxImpl{
			Context:  c.Request().Context(),
			internal: c,
		})
	}
}

type ctxImpl struct {
	context.Context
	internal echo.Context
}

func (c *ctxImpl) Param(value string) string {
	return c.internal.Param(value)
}

func (c *ctxImpl) QueryParam(value string) string {
	return c.internal.QueryParam(value)
}

func (c *ctxImpl) Header(value string) string {
	return c.internal.Request().Header.Get(value)
}

func (c *ctxImpl) RealIP() string {
	return c.internal.RealIP()
}

func (c *ctxImpl) JSON(status int, data any) error {
	return c.internal.JSON(status, data)
}

func (c *ctxImpl) String(status int, data string) error {
	return c.internal.String(status, data)
}

func (c *ctxImpl) NoContent() error {
	return c.internal.NoContent(http.StatusNoContent)
}
