package measure

import (
	"fmt"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/pitch"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// FacetMeasurement is the calibrated measurement of one roof plane.
type FacetMeasurement struct {
	ID              string  `json:"id"`
	PitchDegrees    float64 `json:"pitch_degrees"`
	PitchRatio      string  `json:"pitch_ratio"`
	Compass         string  `json:"compass,omitempty"`
	ProjectedAreaM2 float64 `json:"projected_area_m2"`
	AreaM2          float64 `json:"area_m2"`
	AreaSqFt        float64 `json:"area_sqft"`
}

// AreaTotals aggregates facet areas across the whole roof.
type AreaTotals struct {
	FootprintM2    float64 `json:"footprint_m2"`
	FootprintSqFt  float64 `json:"footprint_sqft"`
	TotalAreaM2    float64 `json:"total_area_m2"`
	TotalAreaSqFt  float64 `json:"total_area_sqft"`
	AreaMultiplier float64 `json:"area_multiplier"`
}

// resolveFacets converts each facet's raw polygon area into a
// slope-corrected real-world surface area using the shared scale factor.
// Degenerate facets contribute zero area; unparsable pitches read as flat.
func resolveFacets(facets []vision.Facet, scaleFactor float64) ([]FacetMeasurement, AreaTotals) {
	measurements := make([]FacetMeasurement, 0, len(facets))
	totals := AreaTotals{}

	for i, f := range facets {
		rawArea := f.Polygon().Area()
		projectedM2 := rawArea * scaleFactor * scaleFactor
		degrees := f.Pitch.Degrees()
		trueM2 := projectedM2 * pitch.SlopeMultiplier(degrees)

		compass := ""
		if f.Azimuth.Valid {
			compass = Compass(f.Azimuth.Degrees)
		}

		id := f.ID
		if id == "" {
			id = fmt.Sprintf("facet-%d", i+1)
		}

		measurements = append(measurements, FacetMeasurement{
			ID:              id,
			PitchDegrees:    degrees,
			PitchRatio:      pitch.Ratio(degrees),
			Compass:         compass,
			ProjectedAreaM2: projectedM2,
			AreaM2:          trueM2,
			AreaSqFt:        trueM2 * SqFtPerSqM,
		})

		totals.FootprintM2 += projectedM2
		totals.TotalAreaM2 += trueM2
	}

	totals.FootprintSqFt = totals.FootprintM2 * SqFtPerSqM
	totals.TotalAreaSqFt = totals.TotalAreaM2 * SqFtPerSqM
	totals.AreaMultiplier = 1.0
	if totals.FootprintM2 > 0 {
		totals.AreaMultiplier = totals.TotalAreaM2 / totals.FootprintM2
	}

	return measurements, totals
}
