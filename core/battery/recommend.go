package battery

const (
	lowChargeWarning  = "Charge soon - Low battery can stress cells"
	highChargeWarning = "Avoid charging to 100% daily - Keep between 20-80% for longevity"
)

// generalAdvice applies to every pack regardless of charge level, in fixed
// order.
var generalAdvice = []string{
	"Ideal daily range: 20% - 80% charge",
	"Use slow charging when possible - Reduces heat stress",
	"Avoid extreme temperatures while charging",
	"Fast charging: Use only when necessary (<20% of charges)",
}

// Recommendations returns charging advice for the pack's current state.
// A low-charge or high-charge warning is prepended when the level crosses
// the respective threshold; both can never appear together.
func (p Pack) Recommendations() []string {
	var recs []string
	if p.ChargePercent < 20 {
		recs = append(recs, lowChargeWarning)
	}
	if p.ChargePercent > 90 {
		recs = append(recs, highChargeWarning)
	}
	return append(recs, generalAdvice...)
}
