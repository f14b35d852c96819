package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarketsNormalizedTotal tracks raw records successfully normalized.
	MarketsNormalizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_scanner_markets_normalized_total",
		Help: "Total number of raw market records normalized into canonical markets",
	})

	// MarketsRejectedTotal tracks raw records discarded during normalization.
	MarketsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_scanner_markets_rejected_total",
		Help: "Total number of raw market records rejected as untradable",
	})

	// ScanErrorsTotal tracks scans that produced no usable data.
	ScanErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_scanner_scan_errors_total",
		Help: "Total number of scans that failed outright",
	})

	// ScanDurationSeconds tracks end-to-end scan latency.
	ScanDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lpbot_scanner_scan_duration_seconds",
		Help:    "Duration of full market scans",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	// OpportunitiesGauge tracks the size of the latest ranked list.
	OpportunitiesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lpbot_scanner_opportunities",
		Help: "Number of opportunities in the most recent ranked scan",
	})
)
