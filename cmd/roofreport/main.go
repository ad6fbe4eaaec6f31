package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/measure"
)

var (
	groundAreaFlag  float64
	calibrationFlag string
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "roofreport",
		Short: "Roof geometry measurement engine",
		Long: `roofreport converts AI-detected roof geometry into calibrated
measurements: facet areas with slope correction, line lengths by type,
and an orientation histogram. Input is a detection JSON file in
normalized pixel space; calibration comes from a reference ground area.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().Float64Var(&groundAreaFlag, "ground-area", defaultGroundArea(),
		"reference ground area in square meters used for calibration")
	root.PersistentFlags().StringVar(&calibrationFlag, "calibration", "",
		"path to a YAML calibration file (overrides --ground-area)")

	root.AddCommand(measureCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(materialsCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultGroundArea() float64 {
	if v := os.Getenv("ROOFREPORT_GROUND_AREA_M2"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return measure.DefaultReferenceGroundAreaM2
}

func loadCalibration() (measure.CalibrationContext, error) {
	if calibrationFlag != "" {
		return measure.LoadCalibration(calibrationFlag)
	}
	return measure.CalibrationContext{ReferenceGroundAreaM2: groundAreaFlag}, nil
}
