package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evsight/evsight/app"
	"github.com/evsight/evsight/core/analysis"
	"github.com/evsight/evsight/core/battery"
	"github.com/evsight/evsight/infra/logger"
	"github.com/evsight/evsight/internal/prompt"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run an interactive battery evaluation",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// chargerPowers maps the menu choice to the charger power in kW.
var chargerPowers = map[string]float64{"1": 3.7, "2": 7.4, "3": 50, "4": 150}

// collectRequest walks the user through every parameter. Any invalid numeric
// answer aborts the session before anything is computed.
func collectRequest(in *prompt.Reader, cmd *cobra.Command) (analysis.Request, error) {
	out := cmd.OutOrStdout()
	req := analysis.Defaults()
	var err error

	printSection(out, "Battery Specifications")
	if req.CapacityKWh, err = in.Float("Enter battery capacity (kWh)", 60); err != nil {
		return req, err
	}
	if req.AgeYears, err = in.Float("Enter battery age (years)", 2); err != nil {
		return req, err
	}
	if req.ChargePercent, err = in.Float("Enter current charge level (%)", 75); err != nil {
		return req, err
	}

	printSection(out, "Battery Health Analysis")
	if req.CyclesPerYear, err = in.Float("Average charge cycles per year", 200); err != nil {
		return req, err
	}
	if req.FastChargePercent, err = in.Float("Fast charging usage (%)", 30); err != nil {
		return req, err
	}

	printSection(out, "Range Prediction Parameters")
	if req.Conditions.SpeedKmh, err = in.Float("Average speed (km/h)", 80); err != nil {
		return req, err
	}
	if req.Conditions.TemperatureC, err = in.Float("Outside temperature (C)", 25); err != nil {
		return req, err
	}
	req.Conditions.ACOn = in.Bool("AC usage? (yes/no)", false)
	fmt.Fprintln(out, "\nDriving Style Options: eco, normal, sport")
	req.Conditions.Style = battery.DrivingStyle(in.String("Select driving style", "normal"))
	fmt.Fprintln(out, "\nTerrain Options: flat, hilly, mountain")
	req.Conditions.Terrain = battery.Terrain(in.String("Select terrain", "flat"))

	printSection(out, "Charging Analysis")
	if req.TargetChargePercent, err = in.Float("Target charge level (%)", 100); err != nil {
		return req, err
	}
	fmt.Fprintln(out, "\nCharger Options:")
	fmt.Fprintln(out, "  1. Home Charger (3.7 kW)")
	fmt.Fprintln(out, "  2. Fast Home Charger (7.4 kW)")
	fmt.Fprintln(out, "  3. DC Fast Charger (50 kW)")
	fmt.Fprintln(out, "  4. Ultra-Fast Charger (150 kW)")
	choice := in.String("Select charger", "2")
	power, ok := chargerPowers[choice]
	if !ok {
		power = 7.4
	}
	req.ChargerPowerKW = power

	printSection(out, "Cost Analysis Parameters")
	if req.Cost.AnnualKm, err = in.Float("Annual kilometers driven", 15000); err != nil {
		return req, err
	}
	if req.Cost.PetrolPerLiter, err = in.Float("Petrol price per liter", 110); err != nil {
		return req, err
	}
	if req.Cost.ElectricityPerKWh, err = in.Float("Electricity price per kWh", 8); err != nil {
		return req, err
	}
	if req.Cost.ICEKmPerLiter, err = in.Float("ICE vehicle efficiency (km/L)", 15); err != nil {
		return req, err
	}
	return req, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := prompt.New(cmd.InOrStdin(), out)

	printHeader(out, "EV BATTERY INTELLIGENCE SYSTEM")
	fmt.Fprintln(out, "      Advanced Battery Management & Range Optimization")

	req, err := collectRequest(in, cmd)
	if err != nil {
		return fmt.Errorf("evaluation aborted: %w", err)
	}

	rep, err := analysis.Run(req)
	if err != nil {
		return fmt.Errorf("evaluation aborted: %w", err)
	}

	renderReport(out, rep)

	// Route the report through the same observer path as the API: history
	// store, metrics sink and, when enabled, the MQTT publisher.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("analyze").Errorf("service close: %v", err)
		}
	}()
	svc.Record(context.Background(), "cli", rep)
	return nil
}
