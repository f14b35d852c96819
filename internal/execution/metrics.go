package execution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_execution_orders_placed_total",
		Help: "Total number of orders accepted by the CLOB",
	})

	OrdersFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_execution_orders_failed_total",
		Help: "Total number of order submissions rejected or errored",
	})

	OrdersCanceledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_execution_orders_canceled_total",
		Help: "Total number of orders successfully canceled",
	})

	CancelsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_execution_cancels_failed_total",
		Help: "Total number of cancellation attempts that failed",
	})
)
