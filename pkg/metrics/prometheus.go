package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records engine-level metrics using Prometheus.
type Recorder struct {
	simulationsTotal   *prometheus.CounterVec
	validationFailures prometheus.Counter
	simDuration        prometheus.Histogram
	tradesSimulated    prometheus.Counter
	inFlight           prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		simulationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphadesk_simulations_total",
				Help: "Total number of Monte Carlo simulation requests by outcome",
			},
			[]string{"outcome"},
		),
		validationFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "alphadesk_validation_failures_total",
				Help: "Total number of simulation requests rejected by parameter validation",
			},
		),
		simDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "alphadesk_simulation_duration_seconds",
				Help:    "Wall-clock duration of the simulate+aggregate stages",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		tradesSimulated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "alphadesk_trades_simulated_total",
				Help: "Total number of simulated trade events across all requests",
			},
		),
		inFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "alphadesk_simulations_in_flight",
				Help: "Number of simulation requests currently computing",
			},
		),
	}
}

// RecordSimulation records a completed simulation request by outcome
// ("ok", "timeout", "error").
func (r *Recorder) RecordSimulation(outcome string) {
	r.simulationsTotal.WithLabelValues(outcome).Inc()
}

// RecordValidationFailure records a request rejected at the validation stage.
func (r *Recorder) RecordValidationFailure() {
	r.validationFailures.Inc()
}

// RecordDuration records simulation compute time in seconds.
func (r *Recorder) RecordDuration(seconds float64) {
	r.simDuration.Observe(seconds)
}

// RecordTrades adds to the simulated trade-event counter.
func (r *Recorder) RecordTrades(n int64) {
	r.tradesSimulated.Add(float64(n))
}

// SimulationStarted marks a request entering the compute stage.
func (r *Recorder) SimulationStarted() {
	r.inFlight.Inc()
}

// SimulationFinished marks a request leaving the compute stage.
func (r *Recorder) SimulationFinished() {
	r.inFlight.Dec()
}
