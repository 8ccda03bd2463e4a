package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rating_widget",
	Subsystem: "render",
	Name:      "renders_total",
	Help:      "Rendered widgets by output format and variant.",
}, []string{"format", "variant"})
