package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"logistics/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	APIPrefix       = "/api/v1"
	errorContextKey = "handler_error"
)

// NewRouter builds the echo instance serving the API, the health check and
// the Prometheus endpoint.
func NewRouter(server *Server, logger *slog.Logger) *echo.Echo {
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			metrics.HTTPRequests.WithLabelValues(v.Method, c.Path(), strconv.Itoa(v.Status)).Inc()

			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			err := v.Error
			if cause, ok := c.Get(errorContextKey).(error); ok {
				err = cause
			}
			ctx := c.Request().Context()
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.ErrorContext(ctx, "request failed", append(attrs, "error", err)...)
			case err != nil:
				logger.WarnContext(ctx, "request rejected", append(attrs, "error", err)...)
			default:
				logger.DebugContext(ctx, "request served", attrs...)
			}
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server.Register(e.Group(APIPrefix))
	return e
}
