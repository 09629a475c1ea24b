package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var effectiveLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fee_structure_cache_lookups_total",
		Help: "Effective fee structure cache lookups by result",
	},
	[]string{"result"},
)
