package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Purchase outcomes, used as the "status" label on purchasesTotal.
const (
	PurchaseCreated          = "created"
	PurchaseInvalidInput     = "invalid_input"
	PurchaseNoProduct        = "no_product"
	PurchaseValidationFailed = "validation_failed"
	PurchaseError            = "error"
)

var (
	purchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_purchases_total",
			Help: "Credit purchase submissions by outcome.",
		},
		[]string{"status"},
	)

	balanceLookupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_balance_lookups_total",
			Help: "Dollar-balance computations against the live ledger.",
		},
	)

	invoiceInsertLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "invoice_insert_latency_ms",
			Help:    "Invoice persistence latency distribution in milliseconds.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

func init() {
	register(purchasesTotal, balanceLookupsTotal, invoiceInsertLatency)
}

func IncPurchase(status string) {
	purchasesTotal.WithLabelValues(status).Inc()
}

func IncBalanceLookup() {
	balanceLookupsTotal.Inc()
}

func ObserveInvoiceInsert(elapsed time.Duration) {
	invoiceInsertLatency.Observe(float64(elapsed.Milliseconds()))
}
