package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API, registered on a
// private registry so tests can run handlers side by side.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	appErrorsTotal  *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "override",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"route", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "override",
			Name:      "http_request_duration_seconds",
			Help:      "Request duration in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route"}),

		appErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "override",
			Name:      "app_errors_total",
			Help:      "Total number of application errors by stage and code.",
		}, []string{"stage", "code"}),

		registry: reg,
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration, m.appErrorsTotal)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(route string, status int, dur time.Duration) {
	if route == "" {
		route = "(unknown)"
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(dur.Seconds())
}

func (m *Metrics) incAppError(stage, code string) {
	if stage == "" {
		stage = "(unknown)"
	}
	if code == "" {
		code = "(unknown)"
	}
	m.appErrorsTotal.WithLabelValues(stage, code).Inc()
}
