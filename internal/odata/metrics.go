package odata

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odata_queries_total",
			Help: "Total number of remote OData queries",
		},
		[]string{"destination", "entity_set", "outcome"},
	)

	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "odata_query_duration_seconds",
			Help:    "Remote OData query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"destination", "entity_set"},
	)
)

func observeQuery(destination, entitySet string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	queriesTotal.WithLabelValues(destination, entitySet, outcome).Inc()
	queryDuration.WithLabelValues(destination, entitySet).Observe(elapsed.Seconds())
}
