package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RebalancesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_app_rebalances_total",
		Help: "Total number of completed rescan-and-requote cycles",
	})

	OpenPositionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lpbot_app_open_positions",
		Help: "Number of currently quoted markets",
	})

	LoopPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_app_loop_panics_total",
		Help: "Total number of panics recovered in the main loop",
	})
)
