package measure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/geo"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// squareFacet is the 100x100 calibration reference facet used across the
// concrete scenarios.
func squareFacet(pitch vision.Pitch) vision.Facet {
	return vision.Facet{
		ID:     "A",
		Points: []geo.Point2D{geo.Pt(0, 0), geo.Pt(100, 0), geo.Pt(100, 100), geo.Pt(0, 100)},
		Pitch:  pitch,
	}
}

func singleFacetAnalysis(pitch vision.Pitch) *vision.AnalysisResult {
	return &vision.AnalysisResult{
		Facets:       []vision.Facet{squareFacet(pitch)},
		Lines:        []vision.LineSegment{},
		Obstructions: []vision.Obstruction{},
	}
}

func TestScaleFactor(t *testing.T) {
	t.Parallel()

	cal := CalibrationContext{ReferenceGroundAreaM2: 100}

	t.Run("square reference scenario", func(t *testing.T) {
		t.Parallel()
		// sqrt(100)/sqrt(10000) = 0.1
		sf := cal.ScaleFactor([]vision.Facet{squareFacet("0")})
		assert.InDelta(t, 0.1, sf, 1e-9)
	})

	t.Run("no facets guards the denominator", func(t *testing.T) {
		t.Parallel()
		sf := cal.ScaleFactor(nil)
		assert.InDelta(t, 10.0, sf, 1e-9) // sqrt(100)/sqrt(1)
	})

	t.Run("degenerate facets only", func(t *testing.T) {
		t.Parallel()
		sf := cal.ScaleFactor([]vision.Facet{{Points: []geo.Point2D{geo.Pt(0, 0), geo.Pt(5, 5)}}})
		assert.InDelta(t, 10.0, sf, 1e-9)
	})

	t.Run("non-positive reference falls back to default", func(t *testing.T) {
		t.Parallel()
		sf := CalibrationContext{}.ScaleFactor([]vision.Facet{squareFacet("0")})
		assert.Greater(t, sf, 0.0)
	})
}

// Scenario A: flat square facet, reference 100 m².
func TestMeasureFlatSquare(t *testing.T) {
	t.Parallel()

	report, err := Measure(singleFacetAnalysis("0"), CalibrationContext{ReferenceGroundAreaM2: 100}, Options{})
	require.NoError(t, err)

	assert.InDelta(t, 0.1, report.ScaleFactor, 1e-9)
	require.Len(t, report.Facets, 1)
	assert.InDelta(t, 100, report.Facets[0].ProjectedAreaM2, 1e-6)
	assert.InDelta(t, 100, report.Facets[0].AreaM2, 1e-6)
	assert.InDelta(t, 1076.39, report.TotalAreaSqFt, 0.01)
	assert.InDelta(t, 1.0, report.Totals.AreaMultiplier, 1e-9)
}

// Scenario B: same facet at 12/12 (45 degrees).
func TestMeasurePitchedSquare(t *testing.T) {
	t.Parallel()

	report, err := Measure(singleFacetAnalysis("12/12"), CalibrationContext{ReferenceGroundAreaM2: 100}, Options{})
	require.NoError(t, err)

	require.Len(t, report.Facets, 1)
	assert.InDelta(t, 45, report.Facets[0].PitchDegrees, 1e-9)
	assert.Equal(t, "12:12", report.Facets[0].PitchRatio)
	assert.InDelta(t, 1522.1, report.TotalAreaSqFt, 0.1)
	assert.InDelta(t, 1.41421, report.Totals.AreaMultiplier, 0.0001)
}

// Scenario C: ridge vs hip length with scaleFactor 0.1.
func TestMeasureLineTotals(t *testing.T) {
	t.Parallel()

	a := singleFacetAnalysis("0") // pins scaleFactor at 0.1 with ref 100
	a.Lines = []vision.LineSegment{
		{Start: geo.Pt(0, 0), End: geo.Pt(100, 0), Type: vision.LineRidge},
		{Start: geo.Pt(0, 0), End: geo.Pt(100, 0), Type: vision.LineHip},
	}

	report, err := Measure(a, CalibrationContext{ReferenceGroundAreaM2: 100}, Options{})
	require.NoError(t, err)

	ridge := report.LineTotals[vision.LineRidge]
	assert.Equal(t, 1, ridge.Count)
	assert.InDelta(t, 32.8084, ridge.TotalLengthFt, 0.001)

	hip := report.LineTotals[vision.LineHip]
	assert.Equal(t, 1, hip.Count)
	assert.InDelta(t, 37.7297, hip.TotalLengthFt, 0.001)

	// Types not present produce no entry.
	_, ok := report.LineTotals[vision.LineValley]
	assert.False(t, ok)
}

func TestMeasureUnknownLineTypeBucketsAsOther(t *testing.T) {
	t.Parallel()

	a := singleFacetAnalysis("0")
	a.Lines = []vision.LineSegment{
		{Start: geo.Pt(0, 0), End: geo.Pt(100, 0), Type: "GUTTER"},
	}

	report, err := Measure(a, CalibrationContext{ReferenceGroundAreaM2: 100}, Options{})
	require.NoError(t, err)

	other := report.LineTotals[vision.LineOther]
	assert.Equal(t, 1, other.Count)
	// Rake-equivalent: x1.15 elongation applies.
	assert.InDelta(t, 37.7297, other.TotalLengthFt, 0.001)
}

func TestMeasureDegenerateFacet(t *testing.T) {
	t.Parallel()

	a := singleFacetAnalysis("0")
	a.Facets = append(a.Facets, vision.Facet{
		Points: []geo.Point2D{geo.Pt(0, 0), geo.Pt(10, 10)},
		Pitch:  "6/12",
	})

	report, err := Measure(a, CalibrationContext{ReferenceGroundAreaM2: 100}, Options{})
	require.NoError(t, err)
	require.Len(t, report.Facets, 2)
	assert.Equal(t, 0.0, report.Facets[1].AreaSqFt)
}

func TestMeasureInvalidAnalysis(t *testing.T) {
	t.Parallel()

	_, err := Measure(nil, DefaultCalibration(), Options{})
	require.ErrorIs(t, err, ErrInvalidAnalysis)

	_, err = Measure(&vision.AnalysisResult{}, DefaultCalibration(), Options{})
	require.ErrorIs(t, err, ErrInvalidAnalysis)
}

// MeasureValidated hands back the validation report from the engine's own
// structural check, so callers assembling envelopes need not re-validate.
func TestMeasureValidated(t *testing.T) {
	t.Parallel()

	report, vr, err := MeasureValidated(singleFacetAnalysis("0"), DefaultCalibration(), Options{})
	require.NoError(t, err)
	require.NotNil(t, report)
	require.NotNil(t, vr)
	assert.True(t, vr.Valid)

	report, vr, err = MeasureValidated(&vision.AnalysisResult{}, DefaultCalibration(), Options{})
	require.ErrorIs(t, err, ErrInvalidAnalysis)
	assert.Nil(t, report)
	require.NotNil(t, vr)
	assert.False(t, vr.Valid)
	assert.NotEmpty(t, vr.Errors)
}

// Running the pipeline twice on identical input must yield identical
// reports.
func TestMeasureIdempotent(t *testing.T) {
	t.Parallel()

	a := singleFacetAnalysis("8/12")
	a.Facets[0].Azimuth = vision.Azimuth{Degrees: 120, Valid: true}
	a.Lines = []vision.LineSegment{
		{Start: geo.Pt(0, 0), End: geo.Pt(80, 60), Type: vision.LineValley},
		{Start: geo.Pt(10, 10), End: geo.Pt(90, 10), Type: vision.LineEave},
	}
	a.Obstructions = []vision.Obstruction{
		{BoundingBox: vision.BoundingBox{Min: geo.Pt(40, 40), Max: geo.Pt(60, 60)}},
	}

	cal := CalibrationContext{ReferenceGroundAreaM2: 140}
	first, err := Measure(a, cal, Options{})
	require.NoError(t, err)
	second, err := Measure(a, cal, Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reports differ between runs (-first +second):\n%s", diff)
	}
}

func TestMeasureObstructionCount(t *testing.T) {
	t.Parallel()

	a := singleFacetAnalysis("0")
	a.Obstructions = []vision.Obstruction{
		{BoundingBox: vision.BoundingBox{Min: geo.Pt(1, 1), Max: geo.Pt(2, 2)}},
		{BoundingBox: vision.BoundingBox{Min: geo.Pt(5, 5), Max: geo.Pt(6, 6)}},
	}

	report, err := Measure(a, DefaultCalibration(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.ObstructionCount)
}
