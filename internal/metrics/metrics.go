// Package metrics records request and counter activity with Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Increment outcomes recorded by IncrementResult.
const (
	IncrementOK    = "ok"
	IncrementEmpty = "empty"
	IncrementError = "error"
)

// Metrics owns its own registry so several instances can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	// RequestCounter counts handled requests.
	// Labels: route, status
	RequestCounter *prometheus.CounterVec

	// RequestDuration measures handler latency in seconds.
	// Labels: route
	RequestDuration *prometheus.HistogramVec

	// IncrementCounter counts /slack/incr outcomes.
	// Labels: result (ok|empty|error)
	IncrementCounter *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fermybot",
				Name:      "requests_total",
				Help:      "Requests handled, by route and status code",
			},
			[]string{"route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fermybot",
				Name:      "request_duration_seconds",
				Help:      "Request handling latency",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 3},
			},
			[]string{"route"},
		),
		IncrementCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fermybot",
				Name:      "increments_total",
				Help:      "Counter increment attempts, by result",
			},
			[]string{"result"},
		),
	}
	m.Registry.MustRegister(m.RequestCounter, m.RequestDuration, m.IncrementCounter)
	return m
}

// RequestHandled records one finished request. Safe on a nil receiver.
func (m *Metrics) RequestHandled(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestCounter.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncrementResult records the outcome of one /slack/incr call. Safe on a nil receiver.
func (m *Metrics) IncrementResult(result string) {
	if m == nil {
		return
	}
	m.IncrementCounter.WithLabelValues(result).Inc()
}
