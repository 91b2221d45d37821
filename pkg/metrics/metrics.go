// Package metrics provides Prometheus instrumentation for buffered-io streams.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for instrumented streams.
type Registry struct {
	// Stream Operation Metrics
	StreamOperations *prometheus.CounterVec
	StreamBytes      *prometheus.CounterVec
	StreamErrors     *prometheus.CounterVec

	// Write Path Metrics
	ShortWrites *prometheus.CounterVec
	Flushes     *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by instrumented streams.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		StreamOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bufferedio",
				Subsystem: "stream",
				Name:      "operations_total",
				Help:      "Total number of operations issued against the underlying stream",
			},
			[]string{"operation", "stream_name"},
		),

		StreamBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bufferedio",
				Subsystem: "stream",
				Name:      "bytes_total",
				Help:      "Total bytes transferred through the underlying stream",
			},
			[]string{"operation", "stream_name"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bufferedio",
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of errors returned by the underlying stream",
			},
			[]string{"operation", "stream_name"},
		),

		ShortWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bufferedio",
				Subsystem: "stream",
				Name:      "short_writes_total",
				Help:      "Total number of writes that accepted fewer bytes than offered",
			},
			[]string{"stream_name"},
		),

		Flushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bufferedio",
				Subsystem: "stream",
				Name:      "flushes_total",
				Help:      "Total number of flushes issued against the underlying stream",
			},
			[]string{"stream_name"},
		),
	}
}
