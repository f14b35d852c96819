package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarketsFetchedTotal tracks raw market records fetched from Gamma.
	MarketsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_discovery_markets_fetched_total",
		Help: "Total number of raw market records fetched from the Gamma API",
	})

	// FetchErrorsTotal tracks failed Gamma page fetches.
	FetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_discovery_fetch_errors_total",
		Help: "Total number of Gamma API page fetch failures",
	})

	// FetchDurationSeconds tracks Gamma request latency.
	FetchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lpbot_discovery_fetch_duration_seconds",
		Help:    "Duration of Gamma API page requests",
		Buckets: prometheus.DefBuckets,
	})
)
