package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered on the server's own registry so several servers
// can coexist in one process.
type metrics struct {
	requests      *prometheus.CounterVec
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	relaxations   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusnav",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusnav",
			Name:      "route_queries_total",
			Help:      "Shortest-path queries by engine and outcome.",
		}, []string{"algorithm", "outcome"}),
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campusnav",
			Name:      "route_query_duration_seconds",
			Help:      "Time spent computing one shortest path.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"algorithm"}),
		relaxations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "campusnav",
			Name:      "route_query_relaxations",
			Help:      "Successful edge relaxations per query.",
			Buckets:   prometheus.LinearBuckets(0, 10, 10),
		}),
	}
}
