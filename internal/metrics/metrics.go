// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medstore_http_requests_total",
			Help: "Total HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medstore_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// InvoicesCreated counts invoices persisted since process start.
	InvoicesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medstore_invoices_created_total",
		Help: "Invoices created.",
	})

	// PurchasesCreated counts purchases persisted since process start.
	PurchasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medstore_purchases_created_total",
		Help: "Purchases created.",
	})
)
