package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 请求指标
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shorturl_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route", "status"},
	)

	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// 业务指标
	LinksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_links_created_total",
			Help: "Total number of short links created",
		},
		[]string{"kind"}, // "random" 或 "alias"
	)

	ShortCodeCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shorturl_shortcode_collisions_total",
			Help: "Random short codes rejected by the unique index",
		},
	)

	Redirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_redirects_total",
			Help: "Redirect lookups by result",
		},
		[]string{"result"}, // "found" 或 "not_found"
	)

	ClickRecordFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shorturl_click_record_failures_total",
			Help: "Clicks that could not be persisted during redirect",
		},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"backend"}, // "redis" 或 "memory"
	)
)
