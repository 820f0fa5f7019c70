package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersAttempted prometheus.Counter
	TransfersCommitted prometheus.Counter
	TransferOutcomes   *prometheus.CounterVec
	TransferRetries    prometheus.Counter
	TransferDuration   prometheus.Histogram
	TransferAmount     prometheus.Histogram

	// Account metrics
	AccountsProvisioned prometheus.Counter
	BalanceReads        prometheus.Counter

	// User metrics
	Signups       prometheus.Counter
	SigninResults *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Sign-in throttling metrics
	SigninThrottled prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersAttempted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_transfers_attempted_total",
			Help: "Total number of transfer requests received",
		}),
		TransfersCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_transfers_committed_total",
			Help: "Total number of transfers committed",
		}),
		TransferOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minipay_transfer_outcomes_total",
				Help: "Transfer outcomes by result",
			},
			[]string{"outcome"},
		),
		TransferRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_transfer_retries_total",
			Help: "Total number of transfer attempts retried after conflicts",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minipay_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minipay_transfer_amount_minor",
			Help:    "Transfer amounts in minor units",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),

		AccountsProvisioned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_accounts_provisioned_total",
			Help: "Total number of accounts provisioned at signup",
		}),
		BalanceReads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_balance_reads_total",
			Help: "Total number of balance reads",
		}),

		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_signups_total",
			Help: "Total number of successful signups",
		}),
		SigninResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minipay_signin_results_total",
				Help: "Sign-in attempts by result",
			},
			[]string{"result"},
		),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minipay_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minipay_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		SigninThrottled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minipay_signin_throttled_total",
			Help: "Sign-in attempts rejected by the failure limiter",
		}),
	}
}
