// Package metrics holds the process-wide Prometheus collectors. Collectors
// register on the default registry at init so handlers can increment them
// without carrying a registry reference.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdmissionsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emprende_admissions_decided_total",
		Help: "Admission decisions taken at registration, by outcome.",
	}, []string{"status"})

	EvaluationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emprende_evaluations_recorded_total",
		Help: "Criterion evaluations recorded or replaced.",
	})

	LotteriesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emprende_lotteries_executed_total",
		Help: "Tie-break lotteries executed.",
	})
)
