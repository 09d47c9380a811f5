package metrics

import "time"

// AnalysisEvent summarizes one completed battery analysis for observability
// purposes.
type AnalysisEvent struct {
	ReportID      string
	CapacityKWh   float64
	SoH           float64
	HealthStatus  string
	RangeKm       float64
	ChargingHours float64
	AnnualSavings float64
	Source        string // "api" or "cli"
	Time          time.Time
}

// Sink records analysis events for observability purposes.
type Sink interface {
	RecordAnalysis(ev AnalysisEvent) error
}

// NopSink discards all events.
type NopSink struct{}

// RecordAnalysis implements Sink.
func (NopSink) RecordAnalysis(AnalysisEvent) error { return nil }
