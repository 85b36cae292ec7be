package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Analysis outcomes used as the "outcome" label.
const (
	OutcomeOK         = "ok"
	OutcomeClash      = "clash"
	OutcomeEmpty      = "empty_input"
	OutcomeBadRequest = "bad_request"
	OutcomeTooLarge   = "too_large"
	OutcomeCancelled  = "cancelled"
	OutcomeError      = "error"
)

type metrics struct {
	analyses *prometheus.CounterVec
	clashes  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	invalid  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barclash_analyses_total",
			Help: "Clash analyses handled, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		clashes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barclash_clashes_total",
			Help: "Clashing barcode pairs reported.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barclash_analysis_duration_seconds",
			Help:    "Time spent normalizing and comparing barcodes.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"mode"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barclash_invalid_lines_total",
			Help: "Submitted lines rejected as invalid barcodes.",
		}),
	}
	reg.MustRegister(m.analyses, m.clashes, m.duration, m.invalid)
	return m
}
