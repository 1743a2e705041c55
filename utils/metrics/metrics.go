package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route template, method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "The total number of handled HTTP requests",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency by route template and method.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// AuthEvents counts auth flow outcomes, e.g. register/ok or login/bad_password.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_auth_events_total",
		Help: "Auth flow outcomes",
	}, []string{"flow", "outcome"})

	// OrdersCreated counts committed orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "The total number of orders created",
	})

	// OTPDeliveries counts OTP hand-offs by channel and result.
	OTPDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_otp_deliveries_total",
		Help: "OTP deliveries by channel and result",
	}, []string{"channel", "result"})
)
