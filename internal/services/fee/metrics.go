package fee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fee_computations_total",
			Help: "Total number of fee computations by outcome",
		},
		[]string{"outcome"},
	)

	ruleApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fee_rule_applications_total",
			Help: "Total number of applied fee rules by rule type",
		},
		[]string{"rule_type"},
	)

	feeAmounts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fee_amount",
			Help:    "Distribution of computed fee amounts",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 500},
		},
	)
)
