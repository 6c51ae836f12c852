package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeValid    = "valid"
	OutcomeWarning  = "warning"
	OutcomeRejected = "rejected"
)

type Metrics struct {
	registry     *prometheus.Registry
	validations  *prometheus.CounterVec
	snapshotRead prometheus.Histogram
}

// New registers the stock collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stock",
			Name:      "validations_total",
			Help:      "Stock movement validations by direction and outcome.",
		}, []string{"direction", "outcome"}),
		snapshotRead: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stock",
			Name:      "snapshot_read_seconds",
			Help:      "Latency of reading a stock snapshot from the store.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.validations, m.snapshotRead)

	return m
}

func (m *Metrics) ObserveValidation(direction, outcome string) {
	m.validations.WithLabelValues(direction, outcome).Inc()
}

func (m *Metrics) ObserveSnapshotRead(d time.Duration) {
	m.snapshotRead.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ValidationCounter() *prometheus.CounterVec {
	return m.validations
}
