package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the patch server.
type metrics struct {
	framesSent     prometheus.Counter
	patchesSent    prometheus.Counter
	checkCycles    prometheus.Counter
	checkErrors    prometheus.Counter
	activeSessions prometheus.Gauge
	wsErrors       *prometheus.CounterVec
}

var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

// newMetrics registers the server metrics with the given registry.
func newMetrics(namespace string, registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_sent_total",
			Help:      "Total number of patch frames sent to clients",
		}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patches_sent_total",
			Help:      "Total number of class patches sent to clients",
		}),

		checkCycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_cycles_total",
			Help:      "Total number of change-detection cycles run",
		}),

		checkErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_errors_total",
			Help:      "Total number of failed check cycles",
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_errors_total",
			Help:      "Total WebSocket errors by type",
		}, []string{"type"}),
	}
}

// sharedMetrics returns the process-wide metrics instance, registering it
// with the default registry on first use.
func sharedMetrics(namespace string) *metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = newMetrics(namespace, prometheus.DefaultRegisterer)
	})
	return globalMetrics
}
