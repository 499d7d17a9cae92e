package http

import (
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure, a decode failure or an error HTTP status.
	// httpStatus is 0 when no response was received.
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string, string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}

func (NopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// MultiLogger fans every call out to each logger in order.
type MultiLogger []HTTPLogger

func (m MultiLogger) LogRequest(method, url string, headers map[string]string, body string) {
	for _, l := range m {
		l.LogRequest(method, url, headers, body)
	}
}

func (m MultiLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	for _, l := range m {
		l.LogResponseSuccess(method, url, headers, body, httpStatus, responseBody, latency)
	}
}

func (m MultiLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	for _, l := range m {
		l.LogResponseError(method, url, headers, body, httpStatus, responseBody, latency, err)
	}
}

// ZapLogger writes outbound calls to the application zap logger, tagged with the upstream name.
type ZapLogger struct {
	Upstream string
}

// NewZapLogger creates a ZapLogger for the named upstream.
func NewZapLogger(upstream string) *ZapLogger {
	return &ZapLogger{Upstream: upstream}
}

func (z *ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug(msg.GetMessage("http.request", method, url),
		zap.String("upstream", z.Upstream),
		zap.String("method", method),
		zap.String("url", url))
}

func (z *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info(msg.GetMessage("http.response-success", method, url, httpStatus, latency),
		zap.String("upstream", z.Upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (z *ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("http.response-error", method, url, httpStatus, latency, err),
		zap.String("upstream", z.Upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", truncate(responseBody, 512)),
		zap.Error(err))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
