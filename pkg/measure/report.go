// Package measure is the roof geometry measurement engine: it calibrates
// normalized vision output against one reference footprint assumption and
// produces real-world area, length, and orientation totals in a single
// deterministic pass. The engine performs no I/O, keeps no state between
// invocations, and never mutates its input.
package measure

import (
	"errors"
	"fmt"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/validation"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// ErrInvalidAnalysis is returned when the AnalysisResult violates the input
// contract (missing document or collections). Noisy geometry never triggers
// it; that degrades to safe defaults instead.
var ErrInvalidAnalysis = errors.New("structurally invalid analysis result")

// Options are the engine's behavior switches.
type Options struct {
	// CountMissingAsNorth restores the legacy reading that counted facets
	// without an azimuth as north-facing. Off by default: such facets are
	// excluded from the orientation histogram.
	CountMissingAsNorth bool `json:"count_missing_as_north"`
}

// Report is the complete measurement output for one analysis pass. It is a
// pure value: measuring the same input with the same calibration yields a
// bit-for-bit identical report.
type Report struct {
	TotalAreaSqFt     float64                       `json:"total_area_sqft"`
	Totals            AreaTotals                    `json:"totals"`
	ScaleFactor       float64                       `json:"scale_factor"`
	Facets            []FacetMeasurement            `json:"facets"`
	LineTotals        map[vision.LineType]LineTotal `json:"line_totals"`
	OrientationCounts map[CardinalBucket]int        `json:"orientation_counts"`
	ObstructionCount  int                           `json:"obstruction_count"`
}

// Measure runs the full pipeline: structural validation, scale calibration,
// facet area resolution, linear feature aggregation, and orientation
// classification.
func Measure(a *vision.AnalysisResult, cal CalibrationContext, opts Options) (*Report, error) {
	report, _, err := MeasureValidated(a, cal, opts)
	return report, err
}

// MeasureValidated is Measure plus the validation report the pipeline
// computes anyway, for callers that surface both. The validation report is
// always non-nil; the measurement report is nil on error.
func MeasureValidated(a *vision.AnalysisResult, cal CalibrationContext, opts Options) (*Report, *validation.Report, error) {
	vr := validation.ValidateAnalysis(a)
	if !vr.Valid {
		return nil, vr, fmt.Errorf("%w: %s", ErrInvalidAnalysis, vr.Summary)
	}

	scaleFactor := cal.ScaleFactor(a.Facets)
	facets, totals := resolveFacets(a.Facets, scaleFactor)
	lineTotals := aggregateLines(a.Lines, scaleFactor)
	orientations := classifyOrientations(a.Facets, opts)

	return &Report{
		TotalAreaSqFt:     totals.TotalAreaSqFt,
		Totals:            totals,
		ScaleFactor:       scaleFactor,
		Facets:            facets,
		LineTotals:        lineTotals,
		OrientationCounts: orientations,
		ObstructionCount:  len(a.Obstructions),
	}, vr, nil
}
