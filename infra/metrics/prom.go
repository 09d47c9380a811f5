package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/evsight/evsight/core/metrics"
)

// PromSink records analysis events in Prometheus metrics.
type PromSink struct {
	analyses *prometheus.CounterVec
	rangeKm  prometheus.Histogram
	hours    prometheus.Histogram
}

// NewPromSink registers analysis metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	analyses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "battery_analyses_total",
		Help: "Total number of completed battery analyses",
	}, []string{"health_status", "source"})
	rangeKm := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "battery_predicted_range_km",
		Help:    "Predicted driving range in kilometers",
		Buckets: prometheus.LinearBuckets(0, 100, 10),
	})
	hours := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "battery_charging_time_hours",
		Help:    "Estimated charging time in hours",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 24},
	})

	if err := reg.Register(analyses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			analyses = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rangeKm); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rangeKm = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(hours); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			hours = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{analyses: analyses, rangeKm: rangeKm, hours: hours}, nil
}

// RecordAnalysis increments counters and observes the analysis figures.
func (s *PromSink) RecordAnalysis(ev coremetrics.AnalysisEvent) error {
	s.analyses.WithLabelValues(ev.HealthStatus, ev.Source).Inc()
	s.rangeKm.Observe(ev.RangeKm)
	s.hours.Observe(ev.ChargingHours)
	return nil
}
