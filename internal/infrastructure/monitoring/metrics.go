// Package monitoring provides Prometheus metrics for the service.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	InteractionsRecorded  *prometheus.CounterVec
	RecommendationsServed prometheus.Counter
	RecommendationSeconds prometheus.Histogram
	ImageScans            prometheus.Counter
	CacheHits             prometheus.Counter
	CacheMisses           prometheus.Counter
}

// NewMetrics registers the service collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		InteractionsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Name:      "interactions_recorded_total",
			Help:      "Interaction events recorded, by kind",
		}, []string{"kind"}),
		RecommendationsServed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platewise",
			Name:      "recommendations_served_total",
			Help:      "Recommendation requests served",
		}),
		RecommendationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "platewise",
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent ranking candidates",
			Buckets:   prometheus.DefBuckets,
		}),
		ImageScans: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platewise",
			Name:      "image_scans_total",
			Help:      "Caption-driven ingredient scans performed",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platewise",
			Name:      "recommendation_cache_hits_total",
			Help:      "Recommendation cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platewise",
			Name:      "recommendation_cache_misses_total",
			Help:      "Recommendation cache misses",
		}),
	}
}
