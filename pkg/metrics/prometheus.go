package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	MapBuilds       prometheus.Counter
	StatsBuilds     prometheus.Counter
	ListPages       prometheus.Counter
	FlightsSkipped  prometheus.Counter
	AggregationTime prometheus.Histogram
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		MapBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_builds_total",
			Help:      "The total number of travel map aggregations",
		}),
		StatsBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_builds_total",
			Help:      "The total number of statistics aggregations",
		}),
		ListPages: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_pages_total",
			Help:      "The total number of flight list pages served",
		}),
		FlightsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_skipped_total",
			Help:      "Flights skipped from the map for missing airport reference data",
		}),
		AggregationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_time_seconds",
			Help:      "Time taken to derive one aggregate from the flight list",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
