// Package analysis orchestrates a battery evaluation session: degradation,
// range, charging time and cost comparison run in that order against a single
// battery.Pack, and the results are assembled into one Report.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evsight/evsight/core/battery"
)

// Request carries every user-supplied parameter of one evaluation session.
type Request struct {
	CapacityKWh       float64 `json:"capacity_kwh"`
	AgeYears          float64 `json:"age_years"`
	ChargePercent     float64 `json:"charge_percent"`
	CyclesPerYear     float64 `json:"cycles_per_year"`
	FastChargePercent float64 `json:"fast_charge_percent"`

	Conditions battery.Conditions `json:"conditions"`

	TargetChargePercent float64 `json:"target_charge_percent"`
	ChargerPowerKW      float64 `json:"charger_power_kw"`

	Cost battery.CostInputs `json:"cost"`
}

// Defaults returns a request mirroring the demo defaults: a two year old
// 60 kWh pack at 75% charge with typical usage, moderate driving conditions
// and Indian fuel prices.
func Defaults() Request {
	usage := battery.DefaultUsageHistory(2)
	return Request{
		CapacityKWh:       60,
		AgeYears:          usage.YearsUsed,
		ChargePercent:     75,
		CyclesPerYear:     usage.CyclesPerYear,
		FastChargePercent: usage.FastChargePercent,
		Conditions: battery.Conditions{
			SpeedKmh:     80,
			TemperatureC: 25,
			Style:        battery.StyleNormal,
			Terrain:      battery.TerrainFlat,
		},
		TargetChargePercent: 100,
		ChargerPowerKW:      7.4,
		Cost: battery.CostInputs{
			AnnualKm:          15000,
			PetrolPerLiter:    110,
			ElectricityPerKWh: 8,
			ICEKmPerLiter:     15,
		},
	}
}

// Validate checks the request for values the engine cannot work with.
func (r Request) Validate() error {
	if err := battery.New(r.CapacityKWh).Validate(); err != nil {
		return err
	}
	if r.AgeYears < 0 {
		return fmt.Errorf("age must not be negative, got %v", r.AgeYears)
	}
	if r.CyclesPerYear < 0 {
		return fmt.Errorf("cycles per year must not be negative, got %v", r.CyclesPerYear)
	}
	if r.ChargePercent < 0 || r.ChargePercent > 100 {
		return fmt.Errorf("charge percent out of [0,100]: %v", r.ChargePercent)
	}
	if r.TargetChargePercent < 0 || r.TargetChargePercent > 100 {
		return fmt.Errorf("target charge percent out of [0,100]: %v", r.TargetChargePercent)
	}
	if r.FastChargePercent < 0 || r.FastChargePercent > 100 {
		return fmt.Errorf("fast charge percent out of [0,100]: %v", r.FastChargePercent)
	}
	if r.ChargerPowerKW <= 0 {
		return fmt.Errorf("charger power must be positive, got %v", r.ChargerPowerKW)
	}
	if r.Cost.AnnualKm < 0 {
		return fmt.Errorf("annual distance must not be negative, got %v", r.Cost.AnnualKm)
	}
	if r.Cost.ICEKmPerLiter <= 0 {
		return fmt.Errorf("ice efficiency must be positive, got %v", r.Cost.ICEKmPerLiter)
	}
	return nil
}

// Report is the outcome of one evaluation session.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	CapacityKWh          float64 `json:"capacity_kwh"`
	AvailableCapacityKWh float64 `json:"available_capacity_kwh"`

	Degradation     battery.DegradationReport `json:"degradation"`
	Range           battery.RangeEstimate     `json:"range"`
	Charging        battery.ChargingEstimate  `json:"charging"`
	Cost            battery.CostComparison    `json:"cost"`
	Recommendations []string                  `json:"recommendations"`
}

// Run performs a complete evaluation session. Degradation runs first so the
// range, charging and cost figures all see the degraded state of health.
func Run(req Request) (Report, error) {
	if err := req.Validate(); err != nil {
		return Report{}, err
	}

	pack := battery.New(req.CapacityKWh).WithCharge(req.ChargePercent)

	deg := battery.EstimateDegradation(battery.UsageHistory{
		YearsUsed:         req.AgeYears,
		CyclesPerYear:     req.CyclesPerYear,
		FastChargePercent: req.FastChargePercent,
	})
	pack = pack.WithSoH(deg.ExactSoH)

	return Report{
		ID:                   uuid.NewString(),
		GeneratedAt:          time.Now().UTC(),
		CapacityKWh:          pack.CapacityKWh,
		AvailableCapacityKWh: pack.AvailableCapacityKWh(),
		Degradation:          deg,
		Range:                pack.PredictRange(req.Conditions),
		Charging:             pack.ChargingTime(req.TargetChargePercent, req.ChargerPowerKW),
		Cost:                 pack.CompareCosts(req.Cost),
		Recommendations:      pack.Recommendations(),
	}, nil
}
