package vision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "facets": [
    {"id": "A", "points": [{"x":0,"y":0},{"x":100,"y":0},{"x":100,"y":100},{"x":0,"y":100}], "pitch": "6/12", "azimuth": 180},
    {"points": [{"x":200,"y":0},{"x":300,"y":0},{"x":250,"y":80}], "pitch": 30},
    {"points": [{"x":0,"y":200},{"x":50,"y":200}], "pitch": "flat", "azimuth": "90"}
  ],
  "lines": [
    {"start": {"x":0,"y":0}, "end": {"x":100,"y":0}, "type": "RIDGE"},
    {"start": {"x":0,"y":0}, "end": {"x":50,"y":50}, "type": "hip"},
    {"start": {"x":10,"y":10}, "end": {"x":20,"y":20}, "type": "GUTTER"}
  ],
  "obstructions": [
    {"boundingBox": {"min": {"x":40,"y":40}, "max": {"x":60,"y":60}}}
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	require.Len(t, result.Facets, 3)
	require.Len(t, result.Lines, 3)
	require.Len(t, result.Obstructions, 1)

	a := result.Facets[0]
	assert.Equal(t, "A", a.ID)
	assert.InDelta(t, 26.565, a.Pitch.Degrees(), 0.001)
	assert.True(t, a.Azimuth.Valid)
	assert.Equal(t, 180.0, a.Azimuth.Degrees)
	assert.InDelta(t, 10000, a.Polygon().Area(), 0.01)

	// Numeric pitch passes through; missing azimuth is invalid.
	b := result.Facets[1]
	assert.Equal(t, 30.0, b.Pitch.Degrees())
	assert.False(t, b.Azimuth.Valid)

	// Unparsable pitch degrades to flat; numeric-string azimuth parses.
	c := result.Facets[2]
	assert.Equal(t, 0.0, c.Pitch.Degrees())
	assert.True(t, c.Azimuth.Valid)
	assert.Equal(t, 90.0, c.Azimuth.Degrees)
	assert.InDelta(t, 0, c.Polygon().Area(), 0.01)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`[1,2,3]`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestDecodeMissingCoordinatesDefaultToZero(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(`{
	  "facets": [],
	  "lines": [{"start": {"x": 3}, "end": {"y": 4}, "type": "EAVE"}],
	  "obstructions": []
	}`))
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.InDelta(t, 5, result.Lines[0].Length(), 0.001)
}

func TestLineTypeNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LineRidge, LineType("ridge").Normalize())
	assert.Equal(t, LineValley, LineType(" VALLEY ").Normalize())
	assert.Equal(t, LineOther, LineType("GUTTER").Normalize())
	assert.Equal(t, LineOther, LineType("").Normalize())
}

func TestLineTypeSloped(t *testing.T) {
	t.Parallel()

	assert.False(t, LineRidge.Sloped())
	assert.False(t, LineEave.Sloped())
	assert.True(t, LineHip.Sloped())
	assert.True(t, LineValley.Sloped())
	assert.True(t, LineRake.Sloped())
	// Unknown types take the steepest default.
	assert.True(t, LineType("GUTTER").Sloped())
}

func TestAzimuthUnmarshalNull(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(`{
	  "facets": [{"points": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10}], "azimuth": null}],
	  "lines": [],
	  "obstructions": []
	}`))
	require.NoError(t, err)
	require.Len(t, result.Facets, 1)

	az := result.Facets[0].Azimuth
	assert.False(t, az.Valid, "null azimuth must stay absent, not decode as 0 degrees")
	assert.Equal(t, 0.0, az.Degrees)

	var direct Azimuth
	require.NoError(t, direct.UnmarshalJSON([]byte("null")))
	assert.False(t, direct.Valid)
}

func TestAzimuthJSONRoundTrip(t *testing.T) {
	t.Parallel()

	valid := Azimuth{Degrees: 225, Valid: true}
	data, err := valid.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "225", string(data))

	absent := Azimuth{}
	data, err = absent.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
