// Package metrics provides Prometheus metrics for the gradestats tool.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// File operation labels.
const (
	OpSave = "save"
	OpLoad = "load"

	ResultOK    = "ok"
	ResultError = "error"
)

// Decoded line outcomes.
const (
	LineAccepted   = "accepted"
	LineMalformed  = "malformed"
	LineOutOfRange = "out_of_range"
)

// Manager manages all Prometheus metrics for a session.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Store metrics
	scoresAdded    prometheus.Counter
	scoresRejected prometheus.Counter
	storeSize      prometheus.Gauge
	storeCapacity  prometheus.Gauge
	storeGrowth    prometheus.Counter
	storeSorts     prometheus.Counter

	// Statistics metrics
	statisticsComputed prometheus.Counter

	// Persistence metrics
	fileOperations       *prometheus.CounterVec
	fileOperationLatency *prometheus.HistogramVec
	decodedLines         *prometheus.CounterVec

	// Error metrics
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gradestats",
		subsystem:        "session",
		histogramBuckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.scoresAdded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "scores_added_total",
		Help:        "Total number of scores accepted into the store",
		ConstLabels: labels,
	})

	m.scoresRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "scores_rejected_total",
		Help:        "Total number of scores rejected as out of range",
		ConstLabels: labels,
	})

	m.storeSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_size",
		Help:        "Number of scores currently held",
		ConstLabels: labels,
	})

	m.storeCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_capacity",
		Help:        "Capacity of the store backing array",
		ConstLabels: labels,
	})

	m.storeGrowth = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_growth_total",
		Help:        "Number of times the store backing array was reallocated",
		ConstLabels: labels,
	})

	m.storeSorts = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_sorts_total",
		Help:        "Number of in-place sorts performed",
		ConstLabels: labels,
	})

	m.statisticsComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "statistics_computed_total",
		Help:        "Number of statistics summaries computed",
		ConstLabels: labels,
	})

	m.fileOperations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "file_operations_total",
			Help:        "File save/load operations by outcome",
			ConstLabels: labels,
		},
		[]string{"operation", "result"},
	)

	m.fileOperationLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "file_operation_duration_milliseconds",
			Help:        "File save/load duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"operation"},
	)

	m.decodedLines = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "decoded_lines_total",
			Help:        "Lines read from score files by outcome",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_total",
			Help:        "Errors by component and type",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)
}

// RecordScoreAdded increments the accepted score counter.
func (m *Manager) RecordScoreAdded() {
	if m.enabled {
		m.scoresAdded.Inc()
	}
}

// RecordScoreRejected increments the rejected score counter.
func (m *Manager) RecordScoreRejected() {
	if m.enabled {
		m.scoresRejected.Inc()
	}
}

// UpdateStore sets the size and capacity gauges.
func (m *Manager) UpdateStore(size, capacity int) {
	if m.enabled {
		m.storeSize.Set(float64(size))
		m.storeCapacity.Set(float64(capacity))
	}
}

// RecordStoreGrowth increments the reallocation counter.
func (m *Manager) RecordStoreGrowth() {
	if m.enabled {
		m.storeGrowth.Inc()
	}
}

// RecordSort increments the sort counter.
func (m *Manager) RecordSort() {
	if m.enabled {
		m.storeSorts.Inc()
	}
}

// RecordStatisticsComputed increments the statistics counter.
func (m *Manager) RecordStatisticsComputed() {
	if m.enabled {
		m.statisticsComputed.Inc()
	}
}

// RecordFileOperation records one save/load with its outcome and duration.
func (m *Manager) RecordFileOperation(op, result string, latencyMs float64) {
	if m.enabled {
		m.fileOperations.WithLabelValues(op, result).Inc()
		m.fileOperationLatency.WithLabelValues(op).Observe(latencyMs)
	}
}

// RecordDecodedLines adds per-outcome line counts from one decode.
func (m *Manager) RecordDecodedLines(accepted, malformed, outOfRange int) {
	if m.enabled {
		m.decodedLines.WithLabelValues(LineAccepted).Add(float64(accepted))
		m.decodedLines.WithLabelValues(LineMalformed).Add(float64(malformed))
		m.decodedLines.WithLabelValues(LineOutOfRange).Add(float64(outOfRange))
	}
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	if m.enabled {
		m.errorsByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// Package-level helpers backed by the global manager.

// RecordScoreAdded increments the accepted score counter.
func RecordScoreAdded() { globalManager.RecordScoreAdded() }

// RecordScoreRejected increments the rejected score counter.
func RecordScoreRejected() { globalManager.RecordScoreRejected() }

// UpdateStore sets the size and capacity gauges.
func UpdateStore(size, capacity int) { globalManager.UpdateStore(size, capacity) }

// RecordStoreGrowth increments the reallocation counter.
func RecordStoreGrowth() { globalManager.RecordStoreGrowth() }

// RecordSort increments the sort counter.
func RecordSort() { globalManager.RecordSort() }

// RecordStatisticsComputed increments the statistics counter.
func RecordStatisticsComputed() { globalManager.RecordStatisticsComputed() }

// RecordFileOperation records one save/load with its outcome and duration.
func RecordFileOperation(op, result string, latencyMs float64) {
	globalManager.RecordFileOperation(op, result, latencyMs)
}

// RecordDecodedLines adds per-outcome line counts from one decode.
func RecordDecodedLines(accepted, malformed, outOfRange int) {
	globalManager.RecordDecodedLines(accepted, malformed, outOfRange)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current metrics in the Prometheus text format to
// path, replacing it atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
