package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gauss/matrix"
)

// metrics holds the collectors of one Server on a private registry.
type metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	steps    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gauss_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "status"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gauss_elimination_steps_total",
			Help: "Elementary row operations performed, by kind",
		}, []string{"kind"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gauss_reduction_duration_seconds",
			Help:    "Latency of engine calls by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
	}
	m.registry.MustRegister(m.requests, m.steps, m.latency)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRequest(route string, status int) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// observe records the latency of one engine call.
func (m *metrics) observe(op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.latency.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}

// stepCounter is an elimination hook feeding the steps counter.
func (m *metrics) stepCounter() matrix.Option {
	return matrix.WithOnOperation(func(s matrix.Step) {
		m.steps.WithLabelValues(s.Kind.String()).Inc()
	})
}
