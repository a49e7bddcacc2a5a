// Package metrics holds the Prometheus counters reported by the plotentry
// tooling. There is no HTTP endpoint; counters are written to a
// node-exporter textfile when a run finishes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ssargent/plotentry/pkg/table"
)

const (
	statusOK        = "ok"
	statusInvalid   = "invalid"
	statusTruncated = "truncated"
)

// Metrics holds all Prometheus metrics for table file tooling
type Metrics struct {
	registry *prometheus.Registry

	recordsTotal   *prometheus.CounterVec
	bytesTotal     *prometheus.CounterVec
	filesTotal     *prometheus.CounterVec
	recordsInvalid *prometheus.CounterVec
}

// NewMetrics creates the counters on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plotentry_records_total",
				Help: "Total number of records decoded",
			},
			[]string{"kind"},
		),

		bytesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plotentry_bytes_total",
				Help: "Total number of record bytes read",
			},
			[]string{"kind"},
		),

		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plotentry_files_total",
				Help: "Total number of table files processed",
			},
			[]string{"kind", "status"},
		),

		recordsInvalid: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plotentry_invalid_records_total",
				Help: "Records failing range validation or sort order",
			},
			[]string{"kind"},
		),
	}

	m.registry.MustRegister(m.recordsTotal, m.bytesTotal, m.filesTotal, m.recordsInvalid)
	return m
}

// RecordRead counts one decoded record of kind
func (m *Metrics) RecordRead(kind table.Kind) {
	m.recordsTotal.WithLabelValues(kind.String()).Inc()
	m.bytesTotal.WithLabelValues(kind.String()).Add(float64(kind.DiskSize()))
}

// RecordInvalid counts one record that failed verification
func (m *Metrics) RecordInvalid(kind table.Kind) {
	m.recordsInvalid.WithLabelValues(kind.String()).Inc()
}

// FileDone counts one processed file, by outcome
func (m *Metrics) FileDone(kind table.Kind, invalid, truncated bool) {
	status := statusOK
	switch {
	case truncated:
		status = statusTruncated
	case invalid:
		status = statusInvalid
	}
	m.filesTotal.WithLabelValues(kind.String(), status).Inc()
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
