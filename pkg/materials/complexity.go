package materials

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComplexityClass grades how cut-up a roof is. More faces, more hips and
// valleys, and wider pitch variation all raise the expected install waste.
type ComplexityClass string

const (
	ComplexitySimple      ComplexityClass = "simple"
	ComplexityModerate    ComplexityClass = "moderate"
	ComplexityComplex     ComplexityClass = "complex"
	ComplexityVeryComplex ComplexityClass = "very_complex"
)

// WastePct returns the base waste percentage for the class.
func (c ComplexityClass) WastePct() float64 {
	switch c {
	case ComplexityModerate:
		return wasteModerate
	case ComplexityComplex:
		return wasteComplex
	case ComplexityVeryComplex:
		return wasteVeryComplex
	default:
		return wasteSimple
	}
}

// PitchStats summarizes the pitch distribution across facets, in degrees.
type PitchStats struct {
	MeanDegrees   float64 `json:"mean_degrees"`
	MinDegrees    float64 `json:"min_degrees"`
	MaxDegrees    float64 `json:"max_degrees"`
	StdDevDegrees float64 `json:"stddev_degrees"`
}

// pitchStats computes summary statistics over the facet pitches.
func pitchStats(degrees []float64) PitchStats {
	if len(degrees) == 0 {
		return PitchStats{}
	}
	s := PitchStats{
		MeanDegrees: stat.Mean(degrees, nil),
		MinDegrees:  floats.Min(degrees),
		MaxDegrees:  floats.Max(degrees),
	}
	if len(degrees) > 1 {
		s.StdDevDegrees = stat.StdDev(degrees, nil)
	}
	return s
}

// classifyComplexity scores a roof's structural features. Valleys weigh
// double because they are the trickiest cuts.
func classifyComplexity(facetCount, hipCount, valleyCount int, pitchVariation float64) (float64, ComplexityClass) {
	score := 0

	switch {
	case facetCount <= 2:
		// no points
	case facetCount <= 4:
		score++
	case facetCount <= 6:
		score += 2
	default:
		score += 3
	}

	score += min(hipCount, 4)
	score += min(valleyCount*2, 6)

	if pitchVariation > 10 {
		score += 2
	} else if pitchVariation > 5 {
		score++
	}

	switch {
	case score <= 2:
		return 1.00, ComplexitySimple
	case score <= 5:
		return 1.05, ComplexityModerate
	case score <= 8:
		return 1.10, ComplexityComplex
	default:
		return 1.15, ComplexityVeryComplex
	}
}
