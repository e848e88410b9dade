package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring delivery lifecycle health
var (
	OrderClaimsWonTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_claims_won_total",
			Help: "Total number of claims that committed",
		},
	)

	OrderClaimsLostTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_claims_lost_total",
			Help: "Total number of claims rejected because the order was no longer available",
		},
	)

	OrderTransitionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of committed status transitions",
		},
	)

	OrderTransitionsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_transitions_rejected_total",
			Help: "Total number of transitions rejected as illegal, unauthorized or stale",
		},
	)

	LocationPublishesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "location_publishes_total",
			Help: "Total number of accepted location publishes",
		},
	)

	LocationPublishesRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "location_publishes_rejected_total",
			Help: "Total number of location publishes rejected outside the writable window",
		},
	)

	OrdersExpiredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_expired_total",
			Help: "Total number of pending orders cancelled by the expiry sweep",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(OrderClaimsWonTotal)
	prometheus.MustRegister(OrderClaimsLostTotal)
	prometheus.MustRegister(OrderTransitionsTotal)
	prometheus.MustRegister(OrderTransitionsRejectedTotal)
	prometheus.MustRegister(LocationPublishesTotal)
	prometheus.MustRegister(LocationPublishesRejectedTotal)
	prometheus.MustRegister(OrdersExpiredTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}
