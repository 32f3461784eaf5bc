package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording summarizer metrics.
// Abstracting the recorder keeps the adapters testable (inject a mock) and
// reusable across providers.
type MetricsRecorder interface {
	// RecordLength records the length of a generated summary in characters.
	RecordLength(length int)

	// RecordLimitExceeded increments the counter when a summary exceeds
	// the configured character limit.
	RecordLimitExceeded()

	// RecordDuration records the time taken to generate a summary.
	RecordDuration(duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics
// on the default registry.
type PrometheusMetrics struct {
	lengthHistogram   prometheus.Histogram
	exceededCounter   prometheus.Counter
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates the Prometheus-based metrics recorder.
// A process-wide singleton avoids duplicate registration when several
// adapters are constructed (e.g. in tests).
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			lengthHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "headline_summary_length_characters",
				Help:    "Distribution of summary lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 200, 300, 400, 600, 900, 1500},
			}),
			exceededCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "headline_summary_limit_exceeded_total",
				Help: "Total number of summaries exceeding the configured character limit",
			}),
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "headline_summary_duration_seconds",
				Help:    "Time taken to generate a headline summary",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements MetricsRecorder.
func (m *PrometheusMetrics) RecordLength(length int) {
	m.lengthHistogram.Observe(float64(length))
}

// RecordLimitExceeded implements MetricsRecorder.
func (m *PrometheusMetrics) RecordLimitExceeded() {
	m.exceededCounter.Inc()
}

// RecordDuration implements MetricsRecorder.
func (m *PrometheusMetrics) RecordDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

// NoopMetrics is a MetricsRecorder that discards all observations.
type NoopMetrics struct{}

// RecordLength implements MetricsRecorder.
func (NoopMetrics) RecordLength(int) {}

// RecordLimitExceeded implements MetricsRecorder.
func (NoopMetrics) RecordLimitExceeded() {}

// RecordDuration implements MetricsRecorder.
func (NoopMetrics) RecordDuration(time.Duration) {}
