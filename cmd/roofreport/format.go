package main

import (
	"fmt"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/materials"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/validation"
)

func printValidationReport(report *validation.Report) {
	fmt.Println("Validation Report")
	fmt.Println("=================")
	fmt.Println()

	if report.Valid {
		fmt.Println("Status: VALID")
	} else {
		fmt.Println("Status: INVALID")
	}
	fmt.Println(report.Summary)
	fmt.Println()

	printResults("ERRORS", report.Errors)
	printResults("WARNINGS", report.Warnings)
	printResults("INFO", report.Info)
}

func printResults(heading string, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", heading, len(results))
	for _, r := range results {
		fmt.Printf("  [%s] %s\n", r.Level, r.Message)
		if r.Path != "" {
			fmt.Printf("        at %s\n", r.Path)
		}
		for _, s := range r.Suggestions {
			fmt.Printf("        suggestion: %s\n", s)
		}
	}
	fmt.Println()
}

func printEstimate(e *materials.Estimate) {
	fmt.Println("Material Estimate")
	fmt.Println("=================")
	fmt.Println()
	fmt.Printf("Roof area:      %.1f sq ft (%.1f squares gross)\n", e.NetAreaSqFt, e.GrossSquares)
	fmt.Printf("Complexity:     %s (factor %.2f, %.0f%% waste)\n", e.ComplexityClass, e.ComplexityFactor, e.WastePct)
	fmt.Printf("Shingle:        %s\n", e.ShingleType)
	fmt.Printf("Pitch:          %.1f deg mean (%.1f-%.1f)\n",
		e.PitchStats.MeanDegrees, e.PitchStats.MinDegrees, e.PitchStats.MaxDegrees)
	fmt.Println()

	fmt.Printf("%-18s %14s %7s %14s %16s\n", "Item", "Net", "Waste", "Gross", "Order")
	fmt.Printf("%-18s %14s %7s %14s %16s\n", "----", "---", "-----", "-----", "-----")
	for _, item := range e.LineItems {
		fmt.Printf("%-18s %14s %6.0f%% %14s %16s\n",
			item.Category,
			fmt.Sprintf("%.1f %s", item.NetQuantity, item.Unit),
			item.WastePct,
			fmt.Sprintf("%.1f %s", item.GrossQuantity, item.Unit),
			fmt.Sprintf("%.0f %s", item.OrderQuantity, item.OrderUnit))
	}
	fmt.Println()
}

func printWasteTable(table []materials.WasteScenario) {
	fmt.Println("Waste Scenarios")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("%-8s %12s %10s %10s  %s\n", "Waste", "Gross sqft", "Squares", "Bundles", "Scenario")
	for _, w := range table {
		fmt.Printf("%-8s %12.1f %10.1f %10d  %s\n",
			fmt.Sprintf("%d%%", w.WastePct), w.GrossSqFt, w.Squares, w.Bundles, w.Description)
	}
	fmt.Println()
}

func printYield(y *materials.YieldAnalysis) {
	fmt.Println("Recycled Shingle Yield")
	fmt.Println("======================")
	fmt.Println()
	fmt.Printf("Tear-off weight:  %.0f lbs (%.1f squares)\n", y.EstimatedWeightLbs, y.TotalSquares)
	fmt.Printf("Binder oil:       %.1f gal\n", y.TotalBinderOilGallons)
	fmt.Printf("Granules:         %.0f lbs\n", y.TotalGranulesLbs)
	fmt.Printf("Fiber:            %.0f lbs\n", y.TotalFiberLbs)
	fmt.Printf("Recoverable:      %.0f lbs (%.0f%%)\n", y.TotalRecoverableLbs, y.RecoveryRatePct)
	fmt.Println()
	if len(y.SlopeDistribution) > 0 {
		fmt.Println("Area by recovery class:")
		for _, class := range []string{"binder_oil", "mixed", "granule"} {
			if area, ok := y.SlopeDistribution[class]; ok {
				fmt.Printf("  %-12s %10.1f sq ft\n", class, area)
			}
		}
		fmt.Println()
	}
	fmt.Println(y.Recommendation)
}
