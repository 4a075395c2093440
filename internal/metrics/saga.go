package metrics

import "github.com/prometheus/client_golang/prometheus"

// JobAdSagaOutcomes counts terminal outcomes of the job ad dual-write
// workflow, labelled by the stage the run reached.
var JobAdSagaOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "jobmatcher",
		Name:      "job_ad_saga_outcomes_total",
		Help:      "Terminal outcomes of job ad dual-write creations",
	},
	[]string{"outcome", "stage"},
)

var sagaMetricsRegistered bool

// RegisterSagaMetrics registers the saga outcome counter. Must be called once from main.
func RegisterSagaMetrics() {
	if sagaMetricsRegistered {
		return
	}
	prometheus.MustRegister(JobAdSagaOutcomes)
	sagaMetricsRegistered = true
}
