package engagement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seriesDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coursepulse_engagement_series_duration_seconds",
		Help:    "Engagement series duration in seconds by range",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"range"})

	sessionsLoaded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "coursepulse_engagement_sessions_loaded",
		Help:    "Number of session records loaded per engagement series",
		Buckets: []float64{0, 10, 100, 1000, 10000, 100000},
	})
)
