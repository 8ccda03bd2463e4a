package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rating_widget",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Resolved displays by effective grade.",
	}, []string{"grade"})

	fallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rating_widget",
		Subsystem: "resolver",
		Name:      "fallbacks_total",
		Help:      "Unknown grades replaced with the fallback grade.",
	})

	memoHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rating_widget",
		Subsystem: "resolver",
		Name:      "memo_hits_total",
		Help:      "Resolutions served from the memo cache.",
	})
)
