package validation

import (
	"fmt"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// ValidateAnalysis performs structural (schema-level) validation on a parsed
// AnalysisResult before measurement. Errors indicate an upstream contract
// violation; warnings flag noisy geometry the engine will degrade to safe
// defaults.
func ValidateAnalysis(a *vision.AnalysisResult) *Report {
	r := NewReport()

	if a == nil {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "analysis result is missing",
			Path:     "$",
			Expected: "object with facets, lines, obstructions",
		})
		return r
	}

	validateCollections(a, r)
	validateFacets(a, r)
	validateLines(a, r)

	return r
}

func validateCollections(a *vision.AnalysisResult, r *Report) {
	if a.Facets == nil {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "facets collection is missing",
			Path:     "facets",
			Expected: "array (may be empty)",
		})
	}
	if a.Lines == nil {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "lines collection is missing",
			Path:     "lines",
			Expected: "array (may be empty)",
		})
	}
	if a.Obstructions == nil {
		// The engine only counts obstructions, so absence degrades to zero.
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "obstructions collection is missing, treating as empty",
			Path:     "obstructions",
			Expected: "array (may be empty)",
		})
	}
}

func validateFacets(a *vision.AnalysisResult, r *Report) {
	for i, f := range a.Facets {
		if len(f.Points) < 3 {
			r.AddWarning(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("facets[%d]: %d points, zero area by definition", i, len(f.Points)),
				Path:        fmt.Sprintf("facets[%d].points", i),
				ActualValue: len(f.Points),
				Expected:    "at least 3 points",
			})
		}
		if f.Pitch != "" && f.Pitch.Degrees() == 0 {
			r.AddInfo(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("facets[%d]: pitch %q reads as flat", i, string(f.Pitch)),
				Path:        fmt.Sprintf("facets[%d].pitch", i),
				ActualValue: string(f.Pitch),
			})
		}
		if !f.Azimuth.Valid {
			r.AddInfo(Result{
				Level:   LevelGeometry,
				Message: fmt.Sprintf("facets[%d]: no azimuth, excluded from orientation counts", i),
				Path:    fmt.Sprintf("facets[%d].azimuth", i),
			})
		}
	}
}

func validateLines(a *vision.AnalysisResult, r *Report) {
	for i, l := range a.Lines {
		if l.Type.Normalize() == vision.LineOther {
			r.AddWarning(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("lines[%d]: unrecognized type %q, aggregated under OTHER", i, string(l.Type)),
				Path:        fmt.Sprintf("lines[%d].type", i),
				ActualValue: string(l.Type),
				Expected:    "RIDGE, HIP, VALLEY, EAVE or RAKE",
			})
		}
		if l.Length() == 0 {
			r.AddInfo(Result{
				Level:   LevelGeometry,
				Message: fmt.Sprintf("lines[%d]: zero length", i),
				Path:    fmt.Sprintf("lines[%d]", i),
			})
		}
	}
}
