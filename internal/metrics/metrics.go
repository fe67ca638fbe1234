// Package metrics collects Prometheus counters for decoding, scanning and history.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vindecoder"

// Результаты декодирования
const (
	OutcomeSuccess    = "success"
	OutcomeDecodeFail = "decode_failed"
	OutcomeTransport  = "transport_error"
	OutcomeInvalid    = "invalid_vin"
	OutcomeBusy       = "busy"
)

type Metrics struct {
	registry *prometheus.Registry

	decodes        *prometheus.CounterVec
	decodeDuration prometheus.Histogram
	scanReads      *prometheus.CounterVec
	historySize    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_requests_total",
			Help:      "VIN decode attempts by outcome.",
		}, []string{"outcome"}),
		decodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Latency of calls to the decode service.",
			Buckets:   prometheus.DefBuckets,
		}),
		scanReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_reads_total",
			Help:      "Barcode reads seen by the consensus filter.",
		}, []string{"result"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_entries",
			Help:      "Number of entries in the search history.",
		}),
	}

	m.registry.MustRegister(
		m.decodes,
		m.decodeDuration,
		m.scanReads,
		m.historySize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveDecode(outcome string, seconds float64) {
	m.decodes.WithLabelValues(outcome).Inc()
	if seconds > 0 {
		m.decodeDuration.Observe(seconds)
	}
}

func (m *Metrics) SetHistorySize(n int) {
	m.historySize.Set(float64(n))
}

// Read, Rejected и Accepted реализуют scan.Observer

func (m *Metrics) Read(string) {
	m.scanReads.WithLabelValues("valid").Inc()
}

func (m *Metrics) Rejected(string) {
	m.scanReads.WithLabelValues("rejected").Inc()
}

func (m *Metrics) Accepted(string) {
	m.scanReads.WithLabelValues("accepted").Inc()
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен для тестов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
