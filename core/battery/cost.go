package battery

import "gonum.org/v1/gonum/floats/scalar"

// CostInputs parameterizes an EV versus combustion-engine cost comparison.
// Prices are in the caller's currency unit and are used as-is.
type CostInputs struct {
	AnnualKm          float64
	PetrolPerLiter    float64
	ElectricityPerKWh float64
	ICEKmPerLiter     float64
}

// CostComparison is the outcome of an EV versus ICE cost comparison.
type CostComparison struct {
	EVAnnualCost   float64 `json:"ev_annual_cost"`
	ICEAnnualCost  float64 `json:"ice_annual_cost"`
	AnnualSavings  float64 `json:"annual_savings"`
	MonthlySavings float64 `json:"monthly_savings"`
	SavingsPercent float64 `json:"savings_percentage"`
	EVCostPerKm    float64 `json:"ev_cost_per_km"`
	ICECostPerKm   float64 `json:"ice_cost_per_km"`
}

// CompareCosts compares the annual energy cost of driving this pack against
// a combustion vehicle. The EV consumption baseline is always taken under
// DefaultConditions, independent of any range prediction made elsewhere in
// the session. Ratios with a zero denominator are reported as 0.
func (p Pack) CompareCosts(in CostInputs) CostComparison {
	baseline := p.PredictRange(DefaultConditions())

	evEnergyPerYear := in.AnnualKm / 100 * baseline.ConsumptionPer100Km
	evAnnual := evEnergyPerYear * in.ElectricityPerKWh

	iceLitersPerYear := in.AnnualKm / in.ICEKmPerLiter
	iceAnnual := iceLitersPerYear * in.PetrolPerLiter

	savings := iceAnnual - evAnnual

	savingsPercent := 0.0
	if iceAnnual != 0 {
		savingsPercent = savings / iceAnnual * 100
	}
	evPerKm, icePerKm := 0.0, 0.0
	if in.AnnualKm != 0 {
		evPerKm = evAnnual / in.AnnualKm
		icePerKm = iceAnnual / in.AnnualKm
	}

	return CostComparison{
		EVAnnualCost:   scalar.Round(evAnnual, 2),
		ICEAnnualCost:  scalar.Round(iceAnnual, 2),
		AnnualSavings:  scalar.Round(savings, 2),
		MonthlySavings: scalar.Round(savings/12, 2),
		SavingsPercent: scalar.Round(savingsPercent, 1),
		EVCostPerKm:    scalar.Round(evPerKm, 3),
		ICECostPerKm:   scalar.Round(icePerKm, 3),
	}
}
