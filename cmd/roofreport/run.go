package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ethan8585g/RoofReport-v2-sub001/internal/server"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/materials"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/measure"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/validation"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

func measureCmd() *cobra.Command {
	var missingAsNorth bool

	cmd := &cobra.Command{
		Use:   "measure <detections.json>",
		Short: "Compute a calibrated measurement report from detection output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMeasure(args[0], missingAsNorth)
		},
	}

	cmd.Flags().BoolVar(&missingAsNorth, "missing-as-north", false,
		"count facets without an azimuth in the North orientation bucket")
	return cmd
}

func runMeasure(path string, missingAsNorth bool) error {
	analysis, err := vision.Load(path)
	if err != nil {
		return err
	}

	cal, err := loadCalibration()
	if err != nil {
		return err
	}

	report, vr, err := measure.MeasureValidated(analysis, cal, measure.Options{
		CountMissingAsNorth: missingAsNorth,
	})
	if err != nil {
		if errors.Is(err, measure.ErrInvalidAnalysis) {
			printValidationReport(vr)
		}
		return err
	}

	envelope := map[string]any{
		"report_id":    uuid.NewString(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"validation":   vr,
		"measurement":  report,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <detections.json>",
		Short: "Check detection output for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	analysis, err := vision.Load(path)
	if err != nil {
		return err
	}

	report := validation.ValidateAnalysis(analysis)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func materialsCmd() *cobra.Command {
	var shingle string

	cmd := &cobra.Command{
		Use:   "materials <detections.json>",
		Short: "Estimate material quantities for the measured roof",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMaterials(args[0], shingle)
		},
	}

	cmd.Flags().StringVar(&shingle, "shingle", string(materials.ShingleArchitectural),
		"shingle type: architectural or 3tab")
	return cmd
}

func runMaterials(path, shingle string) error {
	analysis, err := vision.Load(path)
	if err != nil {
		return err
	}

	cal, err := loadCalibration()
	if err != nil {
		return err
	}

	report, err := measure.Measure(analysis, cal, measure.Options{})
	if err != nil {
		return err
	}

	shingleType := materials.ShingleType(shingle)
	switch shingleType {
	case materials.ShingleArchitectural, materials.Shingle3Tab:
	default:
		return fmt.Errorf("unknown shingle type %q", shingle)
	}

	estimate := materials.EstimateQuantities(report, shingleType)
	printEstimate(estimate)
	printWasteTable(materials.WasteTable(report.TotalAreaSqFt))
	printYield(materials.ComputeYield(report, shingleType))
	return nil
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the measurement HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cal, err := loadCalibration()
			if err != nil {
				return err
			}
			return server.New(cal, port).Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 3000, "port to listen on")
	return cmd
}
