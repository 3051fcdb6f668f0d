// Package metrics exposes Prometheus collectors for ledger operations.
// The ledger core itself never touches these; the HTTP handlers record
// outcomes after each domain call.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unitybank_operations_total",
		Help: "Ledger operations processed, labelled by operation and outcome.",
	}, []string{"operation", "outcome"})

	AccountsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unitybank_accounts_open",
		Help: "Accounts currently registered.",
	})
)

// Observe records one operation outcome.
func Observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
}
