package markets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MidpointFetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_markets_midpoint_fetch_errors_total",
		Help: "Total number of failed midpoint fetches from the CLOB API",
	})

	MidpointFetchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lpbot_markets_midpoint_fetch_duration_seconds",
		Help:    "Duration of midpoint fetches from the CLOB API",
		Buckets: prometheus.DefBuckets,
	})

	MidpointCacheFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_markets_midpoint_cache_fallbacks_total",
		Help: "Total number of midpoint reads served from cache after a fetch failure",
	})
)
