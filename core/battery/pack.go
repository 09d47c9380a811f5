package battery

import "fmt"

// Pack represents an EV battery pack at a point in time. Values are never
// mutated in place; computations that change state return a new Pack or a
// report the caller applies with WithSoH.
type Pack struct {
	CapacityKWh   float64 // nominal rated capacity in kWh
	SoH           float64 // state of health, percent of original capacity retained
	ChargePercent float64 // current charge level in percent
}

// New returns a fresh pack with full health and a full charge.
func New(capacityKWh float64) Pack {
	return Pack{CapacityKWh: capacityKWh, SoH: 100, ChargePercent: 100}
}

// WithCharge returns a copy of the pack at the given charge level. Callers
// are responsible for clamping the value to [0,100].
func (p Pack) WithCharge(percent float64) Pack {
	p.ChargePercent = percent
	return p
}

// WithSoH returns a copy of the pack at the given state of health.
func (p Pack) WithSoH(percent float64) Pack {
	p.SoH = percent
	return p
}

// Validate checks that the pack configuration is sound.
// In particular CapacityKWh must be positive.
func (p Pack) Validate() error {
	if p.CapacityKWh <= 0 {
		return fmt.Errorf("battery capacity must be positive")
	}
	return nil
}

// AvailableCapacityKWh returns the capacity still usable given the pack's
// state of health.
func (p Pack) AvailableCapacityKWh() float64 {
	return p.CapacityKWh * p.SoH / 100
}

// UsableEnergyKWh returns the energy currently stored in the pack.
func (p Pack) UsableEnergyKWh() float64 {
	return p.AvailableCapacityKWh() * p.ChargePercent / 100
}
