package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts finished intake runs by outcome code
	// ("APPROVED" or a rejection/error code).
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payout_submissions_total",
			Help: "Engagement submissions processed by outcome",
		},
		[]string{"outcome"},
	)

	// BudgetAllocatedTotal sums budget units reserved for approved payouts.
	BudgetAllocatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payout_budget_allocated_units_total",
			Help: "Budget units allocated to approved submissions",
		},
	)

	// BudgetReleasedTotal sums budget units returned by rejects and closes.
	BudgetReleasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payout_budget_released_units_total",
			Help: "Budget units released back to campaign budgets",
		},
	)

	BundlesPaidTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payout_bundles_paid_total",
			Help: "Payment bundles reconciled as paid",
		},
	)

	VerifierDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payout_verifier_duration_seconds",
			Help:    "Latency of external verifier calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"verifier", "result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payout_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payout_http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
