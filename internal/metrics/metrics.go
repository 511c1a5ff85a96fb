// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "coinledger"

type Metrics struct {
	cycles        *prometheus.CounterVec
	cycleDuration *prometheus.HistogramVec
	reconciled    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	cursor        prometheus.Gauge
	freeAddresses prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_cycles_total",
			Help:      "Worker cycles by worker and result.",
		}, []string{"worker", "result"}),
		cycleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "worker_cycle_duration_seconds",
			Help:      "Duration of completed worker cycles.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"worker"}),
		reconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_events_total",
			Help:      "Chain events reconciled by outcome.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Owner notifications by kind and result.",
		}, []string{"kind", "result"}),
		cursor: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "observer_block_cursor",
			Help:      "Last block height the observer scanned up to.",
		}),
		freeAddresses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "free_addresses",
			Help:      "Enabled addresses without an owner.",
		}),
	}

	reg.MustRegister(
		m.cycles,
		m.cycleDuration,
		m.reconciled,
		m.notifications,
		m.cursor,
		m.freeAddresses,
	)
	return m
}

// Cycle records one finished worker cycle. Skipped cycles carry no duration.
func (m *Metrics) Cycle(worker, result string, took time.Duration) {
	m.cycles.WithLabelValues(worker, result).Inc()
	if result != ResultSkipped {
		m.cycleDuration.WithLabelValues(worker).Observe(took.Seconds())
	}
}

func (m *Metrics) Reconciled(outcome string) {
	m.reconciled.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Notified(kind, result string) {
	m.notifications.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) Cursor(height int64) {
	m.cursor.Set(float64(height))
}

func (m *Metrics) FreeAddresses(count int) {
	m.freeAddresses.Set(float64(count))
}

const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
	ResultPanic   = "panic"
)
