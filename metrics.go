package lgr

import "github.com/prometheus/client_golang/prometheus"

// MetricsHook counts emitted messages per level. It implements Hook and
// prometheus.Collector, so it can be passed to WithHooks and registered.
type MetricsHook struct {
	counts *prometheus.CounterVec
}

// NewMetricsHook creates the counter "<namespace>_log_messages_total" with a
// "level" label.
func NewMetricsHook(namespace string) *MetricsHook {
	return &MetricsHook{
		counts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "log",
			Name:      "messages_total",
			Help:      "Number of emitted log messages by level.",
		}, []string{"level"}),
	}
}

// Fire implements Hook.
func (m *MetricsHook) Fire(level LogLevel) error {
	c, err := m.counts.GetMetricWithLabelValues(level.String())
	if err != nil {
		return err
	}
	c.Inc()
	return nil
}

// Counter returns the counter of one level (for inspection in tests and
// status pages).
func (m *MetricsHook) Counter(level LogLevel) prometheus.Counter {
	return m.counts.WithLabelValues(level.String())
}

// Describe implements prometheus.Collector.
func (m *MetricsHook) Describe(ch chan<- *prometheus.Desc) { m.counts.Describe(ch) }

// Collect implements prometheus.Collector.
func (m *MetricsHook) Collect(ch chan<- prometheus.Metric) { m.counts.Collect(ch) }
