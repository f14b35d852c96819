package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MonitorTicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_monitor_ticks_total",
		Help: "Total number of completed fill-risk check cycles",
	})

	PositionsByRiskLevel = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lpbot_monitor_positions_by_risk",
		Help: "Number of open positions at each risk level as of the last check",
	}, []string{"level"})

	AlertsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lpbot_monitor_alerts_sent_total",
		Help: "Total number of fill-risk alerts delivered, by risk level",
	}, []string{"level"})
)
