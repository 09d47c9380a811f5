package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/evsight/evsight/core/analysis"
)

// Console formatting helpers. These are pure presentation utilities; the
// figures they print come straight from the report.

func printHeader(w io.Writer, text string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", rule, text, rule)
}

func printSection(w io.Writer, text string) {
	fmt.Fprintf(w, "\n--- %s ---\n", text)
}

func renderReport(w io.Writer, rep analysis.Report) {
	printHeader(w, "BATTERY HEALTH REPORT")
	fmt.Fprintf(w, "  Current Soh: %.1f%%\n", rep.Degradation.SoH)
	fmt.Fprintf(w, "  Degradation Percentage: %.1f%%\n", rep.Degradation.DegradationPercent)
	fmt.Fprintf(w, "  Estimated Remaining Cycles: %.0f\n", rep.Degradation.RemainingCycles)
	fmt.Fprintf(w, "  Health Status: %s\n", rep.Degradation.HealthStatus)
	fmt.Fprintf(w, "\n  Available Capacity: %.2f kWh\n", rep.AvailableCapacityKWh)

	printHeader(w, "RANGE PREDICTION RESULTS")
	fmt.Fprintf(w, "  Range: %.2f km\n", rep.Range.RangeKm)
	fmt.Fprintf(w, "  Consumption Per 100km: %.2f kWh\n", rep.Range.ConsumptionPer100Km)
	fmt.Fprintf(w, "  Available Energy: %.2f kWh\n", rep.Range.AvailableEnergyKWh)

	printHeader(w, "CHARGING TIME ESTIMATION")
	if rep.Charging.Message != "" {
		fmt.Fprintf(w, "  %s\n", rep.Charging.Message)
	} else {
		fmt.Fprintf(w, "  Charging Time: %.2f hours (%.1f minutes)\n", rep.Charging.Hours, rep.Charging.Minutes)
		fmt.Fprintf(w, "  Energy Added: %.2f kWh\n", rep.Charging.EnergyAddedKWh)
		fmt.Fprintf(w, "  Charger Type: %s\n", rep.Charging.ChargerClass)
	}

	printHeader(w, "EV vs ICE COST COMPARISON (Annual)")
	fmt.Fprintf(w, "  EV Annual Cost: %.2f\n", rep.Cost.EVAnnualCost)
	fmt.Fprintf(w, "  ICE Annual Cost: %.2f\n", rep.Cost.ICEAnnualCost)
	fmt.Fprintf(w, "  Annual Savings: %.2f\n", rep.Cost.AnnualSavings)
	fmt.Fprintf(w, "  Monthly Savings: %.2f\n", rep.Cost.MonthlySavings)
	fmt.Fprintf(w, "  Savings Percentage: %.1f%%\n", rep.Cost.SavingsPercent)
	fmt.Fprintf(w, "  EV Cost per km: %.3f\n", rep.Cost.EVCostPerKm)
	fmt.Fprintf(w, "  ICE Cost per km: %.3f\n", rep.Cost.ICECostPerKm)

	printHeader(w, "BATTERY CARE RECOMMENDATIONS")
	for _, rec := range rep.Recommendations {
		fmt.Fprintf(w, "  %s\n", rec)
	}

	printHeader(w, "SYSTEM SUMMARY")
	fmt.Fprintf(w, "  Battery Capacity: %g kWh\n", rep.CapacityKWh)
	fmt.Fprintf(w, "  Current State of Health: %.1f%%\n", rep.Degradation.SoH)
	fmt.Fprintf(w, "  Predicted Range: %.2f km\n", rep.Range.RangeKm)
	fmt.Fprintf(w, "  Annual Fuel Savings: %.2f\n", rep.Cost.AnnualSavings)
}
