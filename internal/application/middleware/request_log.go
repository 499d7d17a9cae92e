package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
)

// Setup registers recover, request id and the request logger, in that order.
func Setup(e *echo.Echo, m *metrics.Metrics) {
	e.Use(echomw.Recover())
	SetupRequestID(e)
	SetupRequestLogger(e, m)
}

// SetupRequestID tags every request with an X-Request-Id, reusing the caller's one when present.
func SetupRequestID(e *echo.Echo) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
}

// SetupRequestLogger registers the request logging middleware with custom log output.
// Every request is counted in m under its route pattern, including the skipped ones.
func SetupRequestLogger(e *echo.Echo, m *metrics.Metrics) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogRoutePath: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			route := v.RoutePath
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTPRequest(v.Method, route, v.Status, v.Latency)

			if skipLog(v.URI) {
				return nil
			}

			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("route", route),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
				)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("route", route),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
					zap.Error(v.Error),
				)
			}
			return nil
		},
	}))
}

// skipLog mutes health checks, scrapes and swagger assets
func skipLog(uri string) bool {
	return strings.Contains(uri, "/health") ||
		strings.Contains(uri, "/metrics") ||
		strings.Contains(uri, "/swagger/")
}
