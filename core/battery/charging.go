package battery

import "gonum.org/v1/gonum/floats/scalar"

// chargingEfficiency is the fraction of supplied energy actually stored.
// AC/DC conversion and thermal losses account for the rest.
const chargingEfficiency = 0.88

// AlreadyChargedMessage is returned when the target charge does not exceed
// the current level. It signals a normal outcome, not an error.
const AlreadyChargedMessage = "Battery already at or above target charge"

// ChargingEstimate is the outcome of a charging time calculation.
type ChargingEstimate struct {
	Hours          float64 `json:"charging_time_hours"`
	Minutes        float64 `json:"charging_time_minutes"`
	EnergyAddedKWh float64 `json:"energy_added_kwh"`
	ChargerClass   string  `json:"charger_type,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// ChargerClass identifies the charger category for the given power rating.
func ChargerClass(powerKW float64) string {
	switch {
	case powerKW <= 3.7:
		return "Level 1 (Home - Standard)"
	case powerKW <= 11:
		return "Level 2 (Home - Fast)"
	case powerKW <= 60:
		return "DC Fast Charger"
	default:
		return "Ultra-Fast DC Charger"
	}
}

// ChargingTime estimates the time to charge the pack from its current level
// to targetPercent using a charger of the given power. Charging losses are
// accounted for through the fixed efficiency.
func (p Pack) ChargingTime(targetPercent, chargerPowerKW float64) ChargingEstimate {
	available := p.AvailableCapacityKWh()
	energyNeeded := available*targetPercent/100 - available*p.ChargePercent/100

	if energyNeeded <= 0 {
		return ChargingEstimate{Message: AlreadyChargedMessage}
	}

	hours := energyNeeded / chargingEfficiency / chargerPowerKW
	return ChargingEstimate{
		Hours:          scalar.Round(hours, 2),
		Minutes:        scalar.Round(hours*60, 1),
		EnergyAddedKWh: scalar.Round(energyNeeded, 2),
		ChargerClass:   ChargerClass(chargerPowerKW),
	}
}
