package progress

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// reportDuration tracks time spent loading and aggregating a report
	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coursepulse_progress_report_duration_seconds",
		Help:    "Progress report duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"report", "result"})

	// excludedEntities counts orphaned catalog entities dropped from totals
	excludedEntities = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coursepulse_catalog_excluded_total",
		Help: "Total orphaned catalog entities excluded from aggregation by kind",
	}, []string{"kind"})
)
