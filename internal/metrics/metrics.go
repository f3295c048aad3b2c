package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the status label.
const (
	StatusSuccess      = "success"
	StatusInvalidInput = "invalid_input"
	StatusFailure      = "failure"
)

type Metrics struct {
	Calculations        *prometheus.CounterVec
	RoutesProcessed     prometheus.Counter
	DirectionsProcessed prometheus.Counter
	CalculationSeconds  prometheus.Histogram
	WorstDistance       prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Calculations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "compass_calculations_total",
			Help: "Total number of destination calculations.",
		}, []string{"status"}),
		RoutesProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "compass_routes_processed_total",
			Help: "Total number of routes walked to their destination.",
		}),
		DirectionsProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "compass_directions_processed_total",
			Help: "Total number of direction legs applied.",
		}),
		CalculationSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "compass_calculation_duration_seconds",
			Help:    "Duration of destination calculations.",
			Buckets: prometheus.DefBuckets,
		}),
		WorstDistance: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "compass_worst_destination_distance",
			Help: "Worst destination distance of the last successful calculation.",
		}),
	}
}
