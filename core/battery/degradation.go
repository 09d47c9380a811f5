package battery

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// maxDegradationPercent caps total capacity loss at a realistic value.
	maxDegradationPercent = 30
	// minSoHPercent is the floor below which the model never degrades.
	minSoHPercent = 70
	// ratedCycleLife is the cycle count the pack is rated for.
	ratedCycleLife = 2000
)

// UsageHistory summarizes how the pack has been used since new.
type UsageHistory struct {
	YearsUsed         float64
	CyclesPerYear     float64
	FastChargePercent float64
}

// DefaultUsageHistory fills in typical usage for the given age: 200 cycles
// per year with 30% fast charging.
func DefaultUsageHistory(yearsUsed float64) UsageHistory {
	return UsageHistory{YearsUsed: yearsUsed, CyclesPerYear: 200, FastChargePercent: 30}
}

// DegradationReport is the outcome of a degradation estimate. SoH and
// DegradationPercent are the reported figures, rounded to one decimal.
type DegradationReport struct {
	SoH                float64 `json:"current_soh"`
	DegradationPercent float64 `json:"degradation_percentage"`
	RemainingCycles    float64 `json:"estimated_remaining_cycles"`
	HealthStatus       string  `json:"health_status"`

	// ExactSoH is the state of health before rounding. It is the value to
	// carry forward with Pack.WithSoH so downstream figures do not drift.
	ExactSoH float64 `json:"-"`
}

// HealthStatus bands a state of health into a human-readable verdict.
func HealthStatus(soh float64) string {
	switch {
	case soh >= 95:
		return "Excellent"
	case soh >= 85:
		return "Good"
	case soh >= 75:
		return "Fair"
	default:
		return "Poor - Consider replacement"
	}
}

// EstimateDegradation estimates capacity loss from calendar age, cycle count
// and fast-charging share. The three terms are independent and additive;
// the total stays within [0, maxDegradationPercent] and the resulting SoH is
// floored. Callers apply ExactSoH with Pack.WithSoH.
func EstimateDegradation(u UsageHistory) DegradationReport {
	totalCycles := math.Max(0, u.YearsUsed*u.CyclesPerYear)

	timeDegradation := u.YearsUsed * 2.5
	cycleDegradation := totalCycles / 1000 * 1.5
	fastChargeImpact := u.FastChargePercent / 100 * u.YearsUsed * 1.2

	total := timeDegradation + cycleDegradation + fastChargeImpact
	total = math.Min(math.Max(total, 0), maxDegradationPercent)

	soh := math.Max(100-total, minSoHPercent)
	return DegradationReport{
		SoH:                scalar.Round(soh, 1),
		DegradationPercent: scalar.Round(total, 1),
		RemainingCycles:    math.Max(0, ratedCycleLife-totalCycles),
		HealthStatus:       HealthStatus(soh),
		ExactSoH:           soh,
	}
}
