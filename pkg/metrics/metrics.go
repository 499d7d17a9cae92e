package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	weatherLookups   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests sent to the weather and geocoding APIs",
			},
			[]string{"upstream", "status"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of requests sent to the weather and geocoding APIs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"upstream"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests served",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		weatherLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_lookups_total",
				Help: "Total number of weather lookups by path and outcome",
			},
			[]string{"path", "result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.upstreamRequests,
		m.upstreamDuration,
		m.httpRequests,
		m.httpDuration,
		m.weatherLookups,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request. route is the matched route pattern, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordLookup counts a weather lookup; result is "success" or an error kind.
func (m *Metrics) RecordLookup(path, result string) {
	if m == nil {
		return
	}
	m.weatherLookups.WithLabelValues(path, result).Inc()
}

// Upstream returns a recorder for outbound calls to the named API.
// It satisfies pkg/http.HTTPLogger.
func (m *Metrics) Upstream(name string) *UpstreamRecorder {
	return &UpstreamRecorder{metrics: m, upstream: name}
}

type UpstreamRecorder struct {
	metrics  *Metrics
	upstream string
}

func (r *UpstreamRecorder) LogRequest(string, string, map[string]string, string) {}

func (r *UpstreamRecorder) LogResponseSuccess(_, _ string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	r.observe(httpStatus, latency)
}

func (r *UpstreamRecorder) LogResponseError(_, _ string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, _ error) {
	r.observe(httpStatus, latency)
}

func (r *UpstreamRecorder) observe(httpStatus int, latencyMillis int64) {
	if r.metrics == nil {
		return
	}
	status := "error"
	if httpStatus != 0 {
		status = strconv.Itoa(httpStatus)
	}
	r.metrics.upstreamRequests.WithLabelValues(r.upstream, status).Inc()
	r.metrics.upstreamDuration.WithLabelValues(r.upstream).Observe((time.Duration(latencyMillis) * time.Millisecond).Seconds())
}
