// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by route template and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financehelper_http_requests_total",
			Help: "Total HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency in seconds.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "financehelper_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LedgerMutations counts ledger writes by operation and outcome.
	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financehelper_ledger_mutations_total",
			Help: "Ledger mutations by operation and status.",
		},
		[]string{"operation", "status"},
	)

	// BalanceAlerts counts computed summaries by alert level.
	BalanceAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financehelper_balance_alerts_total",
			Help: "Summaries computed, by balance alert level.",
		},
		[]string{"level"},
	)

	// RefreshRuns counts scheduled recomputations of derived figures.
	RefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financehelper_refresh_runs_total",
			Help: "Scheduled ledger refreshes by status.",
		},
		[]string{"status"},
	)

	// RemindersSent counts loan reminder emails.
	RemindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financehelper_loan_reminders_total",
			Help: "Loan reminder emails by status.",
		},
		[]string{"status"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Status turns an error into the status label used across collectors.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
