package materials

import (
	"math"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/measure"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/pitch"
)

// RecoveryClass groups facets by which recycled-asphalt-shingle output
// their slope favors. Tear-off from low-pitch planes arrives cleaner and
// suits binder oil extraction; steep planes shed granules better.
type RecoveryClass string

const (
	RecoveryBinderOil RecoveryClass = "binder_oil"
	RecoveryMixed     RecoveryClass = "mixed"
	RecoveryGranule   RecoveryClass = "granule"
)

// Yield rates as a fraction of shingle weight, by recovery class.
var (
	binderRates  = map[RecoveryClass]float64{RecoveryBinderOil: 0.32, RecoveryMixed: 0.28, RecoveryGranule: 0.25}
	granuleRates = map[RecoveryClass]float64{RecoveryGranule: 0.40, RecoveryMixed: 0.36, RecoveryBinderOil: 0.33}
	fiberRates   = map[RecoveryClass]float64{RecoveryBinderOil: 0.08, RecoveryMixed: 0.07, RecoveryGranule: 0.06}
)

const lbsPerGallonBinder = 8.0

// SegmentYield is the recovery estimate for one facet.
type SegmentYield struct {
	FacetID          string        `json:"facet_id"`
	PitchDegrees     float64       `json:"pitch_degrees"`
	PitchRatio       string        `json:"pitch_ratio"`
	AreaSqFt         float64       `json:"area_sqft"`
	RecoveryClass    RecoveryClass `json:"recovery_class"`
	BinderOilGallons float64       `json:"binder_oil_gallons"`
	GranulesLbs      float64       `json:"granules_lbs"`
	FiberLbs         float64       `json:"fiber_lbs"`
}

// YieldAnalysis is the whole-roof recycled material recovery estimate.
type YieldAnalysis struct {
	TotalAreaSqFt         float64            `json:"total_area_sqft"`
	TotalSquares          float64            `json:"total_squares"`
	EstimatedWeightLbs    float64            `json:"estimated_weight_lbs"`
	Segments              []SegmentYield     `json:"segments"`
	TotalBinderOilGallons float64            `json:"total_binder_oil_gallons"`
	TotalGranulesLbs      float64            `json:"total_granules_lbs"`
	TotalFiberLbs         float64            `json:"total_fiber_lbs"`
	TotalRecoverableLbs   float64            `json:"total_recoverable_lbs"`
	RecoveryRatePct       float64            `json:"recovery_rate_pct"`
	SlopeDistribution     map[string]float64 `json:"slope_distribution"`
	Recommendation        string             `json:"processing_recommendation"`
}

// classifyRecovery bins a facet by its contractor pitch rise: at most 4:12
// favors binder oil, above 6:12 favors granules, in between is mixed.
func classifyRecovery(pitchDegrees float64) RecoveryClass {
	rise := pitch.Rise(pitchDegrees)
	switch {
	case rise <= 4:
		return RecoveryBinderOil
	case rise > 6:
		return RecoveryGranule
	default:
		return RecoveryMixed
	}
}

// ComputeYield estimates the recoverable material streams from tearing off
// the measured roof.
func ComputeYield(r *measure.Report, shingle ShingleType) *YieldAnalysis {
	weightPerSquare := shingle.WeightPerSquare()
	totalSquares := r.TotalAreaSqFt / SqFtPerSquare
	totalWeight := totalSquares * weightPerSquare

	segments := make([]SegmentYield, 0, len(r.Facets))
	areaByClass := map[RecoveryClass]float64{}

	for _, f := range r.Facets {
		class := classifyRecovery(f.PitchDegrees)
		segWeight := f.AreaSqFt / SqFtPerSquare * weightPerSquare

		segments = append(segments, SegmentYield{
			FacetID:          f.ID,
			PitchDegrees:     f.PitchDegrees,
			PitchRatio:       f.PitchRatio,
			AreaSqFt:         f.AreaSqFt,
			RecoveryClass:    class,
			BinderOilGallons: math.Round(segWeight*binderRates[class]/lbsPerGallonBinder*10) / 10,
			GranulesLbs:      math.Round(segWeight * granuleRates[class]),
			FiberLbs:         math.Round(segWeight * fiberRates[class]),
		})
		areaByClass[class] += f.AreaSqFt
	}

	analysis := &YieldAnalysis{
		TotalAreaSqFt:      math.Round(r.TotalAreaSqFt),
		TotalSquares:       math.Round(totalSquares*10) / 10,
		EstimatedWeightLbs: math.Round(totalWeight),
		Segments:           segments,
	}

	for _, s := range segments {
		analysis.TotalBinderOilGallons += s.BinderOilGallons
		analysis.TotalGranulesLbs += s.GranulesLbs
		analysis.TotalFiberLbs += s.FiberLbs
	}
	analysis.TotalBinderOilGallons = math.Round(analysis.TotalBinderOilGallons*10) / 10
	analysis.TotalRecoverableLbs = math.Round(analysis.TotalBinderOilGallons*lbsPerGallonBinder +
		analysis.TotalGranulesLbs + analysis.TotalFiberLbs)
	if totalWeight > 0 {
		analysis.RecoveryRatePct = math.Round(analysis.TotalRecoverableLbs/totalWeight*1000) / 10
	}

	totalArea := areaByClass[RecoveryBinderOil] + areaByClass[RecoveryMixed] + areaByClass[RecoveryGranule]
	if totalArea <= 0 {
		totalArea = 1
	}
	lowPct := areaByClass[RecoveryBinderOil] / totalArea * 100
	highPct := areaByClass[RecoveryGranule] / totalArea * 100
	analysis.SlopeDistribution = map[string]float64{
		"low_pitch_pct":    math.Round(lowPct*10) / 10,
		"medium_pitch_pct": math.Round(areaByClass[RecoveryMixed]/totalArea*100*10) / 10,
		"high_pitch_pct":   math.Round(highPct*10) / 10,
	}
	analysis.Recommendation = recommendation(lowPct, highPct)

	return analysis
}

func recommendation(lowPct, highPct float64) string {
	switch {
	case lowPct > 60:
		return "Prioritize binder oil extraction - low-pitch dominant roof. " +
			"Route to the chopper line for optimal oil recovery."
	case highPct > 60:
		return "Prioritize granule separation - steep-pitch dominant roof. " +
			"Run through the screener line for clean granule recovery."
	default:
		return "Mixed recovery stream - process through the full line: " +
			"extract binder oil first, then screen for granules and fiber."
	}
}
