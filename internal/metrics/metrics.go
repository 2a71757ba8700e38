// Package metrics exposes the Prometheus instrumentation for the lookup and
// monitoring pipelines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	LookupsTotal      *prometheus.CounterVec
	LookupErrorsTotal *prometheus.CounterVec
	CacheReadsTotal   *prometheus.CounterVec
	ChecksTotal       *prometheus.CounterVec
	NotificationsSent *prometheus.CounterVec
	LookupDuration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_lookups_total",
			Help: "External lookups performed, by resource kind",
		}, []string{"kind"}),
		LookupErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_lookup_errors_total",
			Help: "External lookups that exhausted their retry budget",
		}, []string{"kind"}),
		CacheReadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_cache_reads_total",
			Help: "Resource cache reads, by outcome (fresh, stale, miss)",
		}, []string{"kind", "outcome"}),
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_monitor_checks_total",
			Help: "Monitoring checks run, by outcome",
		}, []string{"outcome"}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_notifications_total",
			Help: "Notifications recorded, by type",
		}, []string{"type"}),
		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domainwatch_lookup_duration_seconds",
			Help:    "External lookup latency, by resource kind",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveLookup(kind string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(kind).Inc()
	m.LookupDuration.WithLabelValues(kind).Observe(seconds)
	if err != nil {
		m.LookupErrorsTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) ObserveCacheRead(kind, outcome string) {
	if m == nil {
		return
	}
	m.CacheReadsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveCheck(outcome string) {
	if m == nil {
		return
	}
	m.ChecksTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveNotification(typ string) {
	if m == nil {
		return
	}
	m.NotificationsSent.WithLabelValues(typ).Inc()
}
