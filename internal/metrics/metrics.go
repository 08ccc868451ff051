package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation pipeline
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gift_recommend_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "empty_catalog", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gift_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CandidatesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gift_recommend_products_returned",
			Help:    "Number of products returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	// Scoring
	ItemsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gift_scoring_items_skipped_total",
			Help: "Catalog items dropped during scoring",
		},
		[]string{"reason"}, // "not_meaningful", "embed_error", "below_threshold"
	)

	EmbeddingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gift_embedding_duration_seconds",
			Help:    "Embedding provider call latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"task"},
	)

	// Sessions
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gift_sessions_active",
			Help: "Sessions currently held by the session store",
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gift_sessions_expired_total",
			Help: "Sessions removed by the expiry sweep",
		},
	)

	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gift_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gift_events_published_total",
			Help: "Domain events published by type and result",
		},
		[]string{"type", "result"},
	)
)

func ObserveEmbedding(task string, started time.Time) {
	EmbeddingDuration.WithLabelValues(task).Observe(time.Since(started).Seconds())
}

func ObserveHTTP(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
