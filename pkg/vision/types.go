// Package vision defines the input contract with the external roof-detection
// service: facet polygons, structural line segments, and obstruction boxes in
// a shared normalized image frame. The engine treats an AnalysisResult as a
// read-only snapshot.
package vision

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/geo"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/pitch"
)

// LineType classifies a detected structural roof line.
type LineType string

const (
	LineRidge  LineType = "RIDGE"
	LineHip    LineType = "HIP"
	LineValley LineType = "VALLEY"
	LineEave   LineType = "EAVE"
	LineRake   LineType = "RAKE"

	// LineOther is the fallback grouping for unrecognized type strings.
	// They are never silently dropped from length totals.
	LineOther LineType = "OTHER"
)

// Normalize maps a raw type string onto one of the five known line types,
// or LineOther.
func (t LineType) Normalize() LineType {
	switch LineType(strings.ToUpper(strings.TrimSpace(string(t)))) {
	case LineRidge:
		return LineRidge
	case LineHip:
		return LineHip
	case LineValley:
		return LineValley
	case LineEave:
		return LineEave
	case LineRake:
		return LineRake
	default:
		return LineOther
	}
}

// Sloped reports whether lines of this type run along the roof slope rather
// than horizontally. Unrecognized types count as sloped (rake-equivalent,
// the steepest default).
func (t LineType) Sloped() bool {
	switch t.Normalize() {
	case LineRidge, LineEave:
		return false
	default:
		return true
	}
}

// Pitch is a facet's pitch descriptor exactly as received: either a rise/run
// ratio string like "6/12" or a bare numeric degree value. Interpretation is
// deferred to Degrees so that malformed input degrades to flat instead of
// failing the decode.
type Pitch string

// UnmarshalJSON accepts a JSON string or number; anything else (null,
// object) decodes to the empty descriptor.
func (p *Pitch) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Pitch(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Pitch(n.String())
		return nil
	}
	*p = ""
	return nil
}

// Degrees returns the slope angle described by the descriptor, 0 for
// anything unparsable.
func (p Pitch) Degrees() float64 {
	return pitch.ParseDegrees(string(p))
}

// Azimuth is an optional compass bearing in degrees. Absent, null, or
// non-numeric values leave Valid false; such facets are excluded from
// orientation reporting rather than coerced to north.
type Azimuth struct {
	Degrees float64
	Valid   bool
}

// UnmarshalJSON accepts a JSON number or a numeric string. Unmarshal treats
// a null token as a no-op on a plain float64, so it is rejected explicitly
// up front.
func (a *Azimuth) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Azimuth{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Azimuth{Degrees: f, Valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Azimuth{Degrees: f, Valid: true}
			return nil
		}
	}
	*a = Azimuth{}
	return nil
}

// MarshalJSON emits the bearing, or null when absent.
func (a Azimuth) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Degrees)
}

// Facet is one detected roof plane, bounded by an ordered polygon in
// normalized image coordinates. A facet with fewer than 3 points has zero
// area by definition, never an error.
type Facet struct {
	ID      string        `json:"id,omitempty"`
	Points  []geo.Point2D `json:"points"`
	Pitch   Pitch         `json:"pitch,omitempty"`
	Azimuth Azimuth       `json:"azimuth,omitempty"`
}

// Polygon returns the facet boundary as a geo.Polygon.
func (f Facet) Polygon() geo.Polygon {
	return geo.Polygon{Vertices: f.Points}
}

// LineSegment is one detected structural edge.
type LineSegment struct {
	Start geo.Point2D `json:"start"`
	End   geo.Point2D `json:"end"`
	Type  LineType    `json:"type"`
}

// Length returns the segment length in normalized units.
func (l LineSegment) Length() float64 {
	return l.Start.Distance(l.End)
}

// BoundingBox is an axis-aligned box in normalized image coordinates.
type BoundingBox struct {
	Min geo.Point2D `json:"min"`
	Max geo.Point2D `json:"max"`
}

// Obstruction is a detected non-roof feature (chimney, vent, skylight).
// Carried through as a count and overlay aid only; no measurement is
// computed on it.
type Obstruction struct {
	BoundingBox BoundingBox `json:"boundingBox"`
}

// AnalysisResult is the complete output of one vision inference pass.
type AnalysisResult struct {
	Facets       []Facet       `json:"facets"`
	Lines        []LineSegment `json:"lines"`
	Obstructions []Obstruction `json:"obstructions"`
}
