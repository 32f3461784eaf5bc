package ner

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording entity-extraction
// metrics, mirroring the summarizer recorder so tests can inject mocks.
type MetricsRecorder interface {
	// RecordMentions records how many mentions one extraction produced.
	RecordMentions(count int)

	// RecordDuration records the time taken by one extraction call.
	RecordDuration(duration time.Duration)

	// RecordFailure increments the extraction failure counter.
	RecordFailure()
}

// PrometheusMetrics implements MetricsRecorder on the default registry.
type PrometheusMetrics struct {
	mentionsHistogram prometheus.Histogram
	durationHistogram prometheus.Histogram
	failureCounter    prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates the Prometheus-based metrics recorder.
// A process-wide singleton avoids duplicate registration.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			mentionsHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "entity_extraction_mentions",
				Help:    "Number of entity mentions recognized per extraction",
				Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
			}),
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "entity_extraction_duration_seconds",
				Help:    "Time taken by one entity extraction call",
				Buckets: prometheus.DefBuckets,
			}),
			failureCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "entity_extraction_failures_total",
				Help: "Total number of failed entity extraction calls",
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordMentions implements MetricsRecorder.
func (m *PrometheusMetrics) RecordMentions(count int) {
	m.mentionsHistogram.Observe(float64(count))
}

// RecordDuration implements MetricsRecorder.
func (m *PrometheusMetrics) RecordDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

// RecordFailure implements MetricsRecorder.
func (m *PrometheusMetrics) RecordFailure() {
	m.failureCounter.Inc()
}

// NoopMetrics is a MetricsRecorder that discards all observations.
type NoopMetrics struct{}

// RecordMentions implements MetricsRecorder.
func (NoopMetrics) RecordMentions(int) {}

// RecordDuration implements MetricsRecorder.
func (NoopMetrics) RecordDuration(time.Duration) {}

// RecordFailure implements MetricsRecorder.
func (NoopMetrics) RecordFailure() {}
