package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
)

func newServer(m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	Setup(e, m)
	e.GET("/go-weather/weather/conditions/:code", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/go-weather/panic", func(c echo.Context) error {
		panic("boom")
	})
	return e
}

func TestRequestIDIsGenerated(t *testing.T) {
	e := newServer(nil)

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/go-weather/weather/conditions/1", nil))

	_, err := uuid.Parse(recorder.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestRequestIDIsPropagated(t *testing.T) {
	e := newServer(nil)

	request := httptest.NewRequest(http.MethodGet, "/go-weather/weather/conditions/1", nil)
	request.Header.Set(echo.HeaderXRequestID, "abc-123")
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", recorder.Header().Get(echo.HeaderXRequestID))
}

func TestRequestsAreLoggedAndCountedByRoute(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := log.Replace(zap.New(core))
	defer log.Replace(previous)

	m := metrics.New()
	e := newServer(m)

	for _, target := range []string{"/go-weather/weather/conditions/1", "/go-weather/weather/conditions/2"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	entries := logs.FilterField(zap.String("route", "/go-weather/weather/conditions/:code")).All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/go-weather/weather/conditions/2", entries[1].ContextMap()["uri"])

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, recorder.Body.String(), `http_requests_total{method="GET",route="/go-weather/weather/conditions/:code",status="200"} 2`)
}

func TestPanicsAreRecovered(t *testing.T) {
	e := newServer(nil)

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/go-weather/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestSkipLog(t *testing.T) {
	assert.True(t, skipLog("/go-weather/health"))
	assert.True(t, skipLog("/go-weather/metrics"))
	assert.True(t, skipLog("/go-weather/swagger/index.html"))
	assert.False(t, skipLog("/go-weather/weather?city=Recife"))
}
