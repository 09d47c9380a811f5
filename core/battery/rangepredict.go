package battery

import "gonum.org/v1/gonum/floats/scalar"

// baseConsumptionKWhPer100Km is the consumption of a typical mid-size EV in
// neutral conditions. All condition factors multiply this rate.
const baseConsumptionKWhPer100Km = 15

// DrivingStyle describes how aggressively the vehicle is driven.
type DrivingStyle string

const (
	StyleEco    DrivingStyle = "eco"
	StyleNormal DrivingStyle = "normal"
	StyleSport  DrivingStyle = "sport"
)

// Terrain describes the elevation profile of the route.
type Terrain string

const (
	TerrainFlat     Terrain = "flat"
	TerrainHilly    Terrain = "hilly"
	TerrainMountain Terrain = "mountain"
)

var styleFactors = map[DrivingStyle]float64{
	StyleEco:    0.85,
	StyleNormal: 1.0,
	StyleSport:  1.3,
}

var terrainFactors = map[Terrain]float64{
	TerrainFlat:     1.0,
	TerrainHilly:    1.2,
	TerrainMountain: 1.4,
}

// Factor returns the consumption multiplier for the style. Unknown styles
// are treated as neutral.
func (s DrivingStyle) Factor() float64 {
	if f, ok := styleFactors[s]; ok {
		return f
	}
	return 1.0
}

// Factor returns the consumption multiplier for the terrain. Unknown
// terrains are treated as neutral.
func (t Terrain) Factor() float64 {
	if f, ok := terrainFactors[t]; ok {
		return f
	}
	return 1.0
}

// Conditions groups the driving conditions a range prediction depends on.
type Conditions struct {
	SpeedKmh     float64
	TemperatureC float64
	ACOn         bool
	Style        DrivingStyle
	Terrain      Terrain
}

// DefaultConditions returns the neutral baseline used by the cost model:
// moderate speed, mild weather, AC off, normal style on flat terrain.
func DefaultConditions() Conditions {
	return Conditions{
		SpeedKmh:     60,
		TemperatureC: 25,
		Style:        StyleNormal,
		Terrain:      TerrainFlat,
	}
}

// RangeEstimate is the outcome of a range prediction.
type RangeEstimate struct {
	RangeKm             float64 `json:"range_km"`
	ConsumptionPer100Km float64 `json:"consumption_per_100km"`
	AvailableEnergyKWh  float64 `json:"available_energy_kwh"`
}

func speedFactor(speedKmh float64) float64 {
	switch {
	case speedKmh <= 50:
		return 0.85
	case speedKmh <= 80:
		return 1.0
	case speedKmh <= 110:
		return 1.25
	default:
		return 1.5
	}
}

func temperatureFactor(tempC float64) float64 {
	switch {
	case tempC < 0:
		return 1.4
	case tempC < 10:
		return 1.25
	case tempC > 35:
		return 1.15
	default:
		return 1.0
	}
}

// PredictRange estimates how far the pack can drive under the given
// conditions. Consumption is the base rate scaled by independent factors for
// speed, temperature, AC usage, driving style and terrain.
func (p Pack) PredictRange(c Conditions) RangeEstimate {
	acFactor := 1.0
	if c.ACOn {
		acFactor = 1.15
	}

	consumption := baseConsumptionKWhPer100Km *
		speedFactor(c.SpeedKmh) *
		temperatureFactor(c.TemperatureC) *
		acFactor *
		c.Style.Factor() *
		c.Terrain.Factor()

	usable := p.UsableEnergyKWh()
	return RangeEstimate{
		RangeKm:             scalar.Round(usable/consumption*100, 2),
		ConsumptionPer100Km: scalar.Round(consumption, 2),
		AvailableEnergyKWh:  scalar.Round(usable, 2),
	}
}
