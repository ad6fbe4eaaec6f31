package measure

import (
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// LineTotal aggregates the detected segments of one structural line type.
type LineTotal struct {
	Count         int     `json:"count"`
	TotalLengthFt float64 `json:"total_length_ft"`
}

// aggregateLines converts each segment's raw length to real-world feet and
// sums by normalized line type. Sloped types (hip, valley, rake, and
// anything unrecognized) receive the elongation correction; ridges and
// eaves are horizontal and do not. Types absent from the input produce no
// entry.
func aggregateLines(lines []vision.LineSegment, scaleFactor float64) map[vision.LineType]LineTotal {
	totals := make(map[vision.LineType]LineTotal)

	for _, l := range lines {
		lengthM := l.Length() * scaleFactor
		if l.Type.Sloped() {
			lengthM *= slopedElongation
		}

		key := l.Type.Normalize()
		t := totals[key]
		t.Count++
		t.TotalLengthFt += lengthM * FtPerM
		totals[key] = t
	}

	return totals
}
