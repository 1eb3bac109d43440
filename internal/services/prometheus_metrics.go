package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	lineItemsUpserted *prometheus.CounterVec
	lineItemsRemoved  *prometheus.CounterVec
	syncBatchesTotal  *prometheus.CounterVec
	syncBatchDuration prometheus.Histogram
	syncBatchSize     prometheus.Gauge
	summariesComputed prometheus.Counter
	overBudgetAlerts  prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		lineItemsUpserted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_line_items_upserted_total",
				Help: "Total number of line item upserts",
			},
			[]string{"source_module", "result"},
		),
		lineItemsRemoved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_line_items_removed_total",
				Help: "Total number of line items removed",
			},
			[]string{"source_module"},
		),
		syncBatchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_sync_batches_total",
				Help: "Total number of sync batches by outcome",
			},
			[]string{"result"},
		),
		syncBatchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_sync_batch_duration_milliseconds",
				Help:    "Sync batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		syncBatchSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_sync_batch_size",
				Help: "Number of line items marked synced by the last batch",
			},
		),
		summariesComputed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_summaries_computed_total",
				Help: "Total number of budget summaries computed",
			},
		),
		overBudgetAlerts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_over_budget_alerts_total",
				Help: "Total number of summaries that raised the over-budget condition",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "line_item.upserted":
		m.lineItemsUpserted.WithLabelValues(tags["source_module"], tags["result"]).Inc()
	case "line_item.removed":
		m.lineItemsRemoved.WithLabelValues(tags["source_module"]).Inc()
	case "sync.batch":
		m.syncBatchesTotal.WithLabelValues(tags["result"]).Inc()
	case "summary.computed":
		m.summariesComputed.Inc()
	case "alert.over_budget":
		m.overBudgetAlerts.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "sync.batch" {
		m.syncBatchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "sync.batch.size" {
		m.syncBatchSize.Set(value)
	}
}
