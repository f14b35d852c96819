package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_notify_sent_total",
		Help: "Total number of operator alerts delivered",
	})

	NotificationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lpbot_notify_errors_total",
		Help: "Total number of operator alerts that failed to deliver",
	})
)
