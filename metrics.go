package authinfo

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for header decode operations.
type Metrics struct {
	decodeTotal    *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
	registry       *prometheus.Registry
}

var (
	sharedMetrics     *Metrics
	sharedMetricsOnce sync.Once
)

// GetSharedMetrics returns the singleton Metrics instance.
func GetSharedMetrics() *Metrics {
	sharedMetricsOnce.Do(func() {
		sharedMetrics = NewMetrics("gateway")
	})
	return sharedMetrics
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "gateway"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.decodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "authinfo",
			Name:      "decode_total",
			Help:      "Total number of auth header decode attempts",
		},
		[]string{"result", "algorithm"},
	)

	m.decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "authinfo",
			Name:      "decode_duration_seconds",
			Help:      "Auth header decode duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"result", "algorithm"},
	)

	m.registry.MustRegister(
		m.decodeTotal,
		m.decodeDuration,
	)

	return m
}

// RecordDecode records a decode attempt.
func (m *Metrics) RecordDecode(result, algorithm string, duration time.Duration) {
	m.decodeTotal.WithLabelValues(result, algorithm).Inc()
	m.decodeDuration.WithLabelValues(result, algorithm).Observe(duration.Seconds())
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// MustRegister registers the metrics with the given registry. It uses
// Register (not MustRegister) to gracefully handle duplicate registration
// when decoders are recreated; AlreadyRegisteredError is silently ignored.
func (m *Metrics) MustRegister(registry *prometheus.Registry) {
	for _, c := range []prometheus.Collector{
		m.decodeTotal,
		m.decodeDuration,
	} {
		if err := registry.Register(c); err != nil {
			if !isAlreadyRegistered(err) {
				panic(err)
			}
		}
	}
}

// isAlreadyRegistered returns true if the error indicates the collector
// was already registered with the registry.
func isAlreadyRegistered(err error) bool {
	var are prometheus.AlreadyRegisteredError
	return errors.As(err, &are)
}
