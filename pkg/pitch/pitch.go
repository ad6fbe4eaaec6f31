// Package pitch converts roof pitch descriptors into slope angles and
// slope-correction factors. The vision service reports pitch either as a
// rise/run ratio string ("6/12") or as a raw degree value; malformed input
// always degrades to a flat roof rather than erroring.
package pitch

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MaxDegrees is the steepest pitch accepted as valid input. Anything at
	// or beyond it clamps to this value before the slope multiplier is
	// computed, so the multiplier stays finite and positive.
	MaxDegrees = 89.9
)

// maxSlopeMultiplier is 1/cos(MaxDegrees), the cap for SlopeMultiplier.
var maxSlopeMultiplier = 1 / math.Cos(MaxDegrees*math.Pi/180)

// ParseDegrees converts a pitch descriptor into a slope angle in degrees
// (0 = flat). Accepted forms, in order:
//
//   - a rise/run ratio like "6/12" -> atan(rise/run) in degrees
//   - a plain decimal string like "35" or "22.5" -> that value
//
// Any other input, including a zero run, returns 0. This function never
// fails.
func ParseDegrees(pitch string) float64 {
	s := strings.TrimSpace(pitch)
	if s == "" {
		return 0
	}
	if rise, run, ok := strings.Cut(s, "/"); ok {
		r, errRise := strconv.ParseFloat(strings.TrimSpace(rise), 64)
		n, errRun := strconv.ParseFloat(strings.TrimSpace(run), 64)
		if errRise == nil && errRun == nil && n != 0 {
			return math.Atan(r/n) * 180 / math.Pi
		}
		return 0
	}
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return deg
}

// SlopeMultiplier returns the factor by which a roof plane's true surface
// area exceeds its top-down projection: 1/cos(degrees). Flat and
// non-positive pitches return 1. Pitches at or beyond MaxDegrees clamp to
// maxSlopeMultiplier (~572.96) instead of diverging.
func SlopeMultiplier(degrees float64) float64 {
	if degrees <= 0 {
		return 1
	}
	if degrees >= MaxDegrees {
		return maxSlopeMultiplier
	}
	return 1 / math.Cos(degrees*math.Pi/180)
}

// Ratio formats a slope angle in contractor X:12 notation, with the rise
// rounded to one decimal: 29.2 degrees -> "6.7:12". Angles outside (0, 90)
// format as "0:12".
func Ratio(degrees float64) string {
	if degrees <= 0 || degrees >= 90 {
		return "0:12"
	}
	rise := 12 * math.Tan(degrees*math.Pi/180)
	return strconv.FormatFloat(math.Round(rise*10)/10, 'f', -1, 64) + ":12"
}

// Rise returns the rise over a 12-unit run for the given slope angle, the
// numeric form of Ratio. Used to classify facets into contractor pitch
// bands (e.g. "at most 4:12").
func Rise(degrees float64) float64 {
	if degrees <= 0 || degrees >= 90 {
		return 0
	}
	return 12 * math.Tan(degrees*math.Pi/180)
}
