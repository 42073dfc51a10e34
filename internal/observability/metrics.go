// Package observability provides application metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikeToggles counts like toggle outcomes by target kind and outcome
	// (created, already_liked, removed, not_liked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playto_like_toggles_total",
		Help: "Total number of like toggle operations by target and outcome",
	}, []string{"target", "outcome"})

	// LeaderboardQueryLatency records the latency of the windowed karma aggregation.
	LeaderboardQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playto_leaderboard_query_latency_seconds",
		Help:    "Leaderboard aggregation query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// CommentDepth observes the depth of newly inserted comments.
	CommentDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playto_comment_depth",
		Help:    "Depth of inserted comments within their thread",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "playto_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordLikeToggle increments the like toggle counter.
func RecordLikeToggle(target, outcome string) {
	LikeToggles.WithLabelValues(target, outcome).Inc()
}
