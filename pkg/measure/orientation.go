package measure

import (
	"math"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// CardinalBucket is one of the four orientation buckets facets are counted
// into.
type CardinalBucket string

const (
	North CardinalBucket = "N"
	East  CardinalBucket = "E"
	South CardinalBucket = "S"
	West  CardinalBucket = "W"
)

// ClassifyAzimuth bins a compass bearing into a cardinal bucket. Ranges are
// upper-inclusive (135 is east, 225 south, 315 west) except that 45 itself
// belongs to east; everything above 315 wraps around to north. Bearings
// outside [0, 360) are normalized first.
func ClassifyAzimuth(degrees float64) CardinalBucket {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a >= 45 && a <= 135:
		return East
	case a > 135 && a <= 225:
		return South
	case a > 225 && a <= 315:
		return West
	default:
		return North
	}
}

// compassPoints are the 16 compass directions in clockwise order from north.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass returns the 16-point compass direction for a bearing, used for
// per-facet display. The 4-bucket histogram uses ClassifyAzimuth instead.
func Compass(degrees float64) string {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	return compassPoints[int(math.Round(a/22.5))%16]
}

// classifyOrientations counts facets per cardinal bucket. Facets without a
// valid azimuth are excluded unless the legacy CountMissingAsNorth policy
// is set; zero-count buckets are omitted.
func classifyOrientations(facets []vision.Facet, opts Options) map[CardinalBucket]int {
	counts := make(map[CardinalBucket]int)
	for _, f := range facets {
		if !f.Azimuth.Valid {
			if opts.CountMissingAsNorth {
				counts[North]++
			}
			continue
		}
		counts[ClassifyAzimuth(f.Azimuth.Degrees)]++
	}
	return counts
}
