package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vidcompress/internal/compress"
)

const namespace = "vidcompress"

// Recorder implements compress.Recorder.
type Recorder struct {
	registry *prometheus.Registry

	attemptsTotal   *prometheus.CounterVec
	attemptBytes    prometheus.Histogram
	attemptDuration prometheus.Histogram
	runsTotal       *prometheus.CounterVec
	reductionRatio  prometheus.Gauge
}

// NewRecorder registers the vidcompress metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		attemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "Encode attempts, by outcome",
		}, []string{"outcome"}),
		attemptBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempt_output_bytes",
			Help:      "Size of measured artifacts in bytes",
			Buckets:   prometheus.ExponentialBuckets(1<<20, 2, 10),
		}),
		attemptDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempt_duration_seconds",
			Help:      "Wall time of a single encode attempt",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
		}),
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Compression runs, by terminal state",
		}, []string{"state"}),
		reductionRatio: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_reduction_ratio",
			Help:      "Fraction of the input size saved by the last successful run",
		}),
	}
}

// Registry returns the private registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordAttempt counts one attempt. Sizes are observed only when measured.
func (r *Recorder) RecordAttempt(a compress.Attempt) {
	outcome := a.Status.String()
	if a.Measured {
		if a.Fits {
			outcome = "fits"
		} else {
			outcome = "over_budget"
		}
		r.attemptBytes.Observe(float64(a.Size))
	}
	r.attemptsTotal.WithLabelValues(outcome).Inc()
	r.attemptDuration.Observe(a.Duration.Seconds())
}

// RecordResult counts a finished run.
func (r *Recorder) RecordResult(res compress.Result) {
	r.runsTotal.WithLabelValues(res.State.String()).Inc()
	if res.State == compress.StateSucceeded {
		r.reductionRatio.Set(res.ReductionRatio())
	}
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
