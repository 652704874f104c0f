package controllers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sectionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "portal",
	Subsystem: "sections",
	Name:      "render_duration_seconds",
	Help:      "Time spent fetching and rendering a portal section.",
	Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
}, []string{"section", "result"})

func observeSection(section string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	sectionLatency.WithLabelValues(section, result).Observe(time.Since(start).Seconds())
}
