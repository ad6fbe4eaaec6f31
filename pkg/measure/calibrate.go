package measure

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// CalibrationContext holds the single external calibration assumption: a
// real-world ground footprint area for the property, in square meters. The
// sum of all projected facet areas is treated as a stand-in for this
// footprint when deriving the pixel-to-meter scale.
type CalibrationContext struct {
	ReferenceGroundAreaM2 float64 `yaml:"reference_ground_area_m2" json:"reference_ground_area_m2"`
}

// DefaultCalibration returns a context using the default reference footprint.
func DefaultCalibration() CalibrationContext {
	return CalibrationContext{ReferenceGroundAreaM2: DefaultReferenceGroundAreaM2}
}

// LoadCalibration reads a calibration context from a YAML file.
func LoadCalibration(path string) (CalibrationContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CalibrationContext{}, fmt.Errorf("reading calibration file: %w", err)
	}

	var ctx CalibrationContext
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return CalibrationContext{}, fmt.Errorf("parsing calibration YAML: %w", err)
	}
	return ctx, nil
}

// ScaleFactor derives the linear meters-per-normalized-unit scale for one
// analysis pass: sqrt(reference area) / sqrt(sum of raw facet areas). The
// raw area sum defaults to 1 when there are no facets, and a non-positive
// reference falls back to the default footprint, so the factor is always
// positive and finite. Recomputed per AnalysisResult, never cached across
// properties.
func (c CalibrationContext) ScaleFactor(facets []vision.Facet) float64 {
	ref := c.ReferenceGroundAreaM2
	if ref <= 0 {
		ref = DefaultReferenceGroundAreaM2
	}

	totalNormArea := 0.0
	for _, f := range facets {
		totalNormArea += f.Polygon().Area()
	}
	if totalNormArea <= 0 {
		totalNormArea = 1
	}

	return math.Sqrt(ref) / math.Sqrt(totalNormArea)
}
