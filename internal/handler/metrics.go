package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	ordersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of orders rejected for validation or stock reasons",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of order status transitions",
		},
		[]string{"to"},
	)

	paymentIntentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "payments",
			Name:      "intents_created_total",
			Help:      "Total number of payment intents created",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersRejected,
		statusTransitions,
		paymentIntentsCreated,
	)
}
