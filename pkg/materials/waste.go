package materials

import "math"

// WasteScenario is one row of the overage comparison table.
type WasteScenario struct {
	WastePct    int     `json:"waste_pct"`
	Factor      float64 `json:"factor"`
	Description string  `json:"description"`
	GrossSqFt   float64 `json:"gross_sqft"`
	Squares     float64 `json:"squares"`
	Bundles     int     `json:"bundles"`
}

var wasteFactors = []struct {
	pct         int
	factor      float64
	description string
}{
	{5, 1.05, "Minimal waste (simple gable)"},
	{10, 1.10, "Standard waste (moderate complexity)"},
	{15, 1.15, "Above average (hips/valleys)"},
	{20, 1.20, "High waste (complex/cut-up roof)"},
}

// WasteTable compares order quantities across standard overage scenarios
// for the given true roof area.
func WasteTable(totalSqFt float64) []WasteScenario {
	table := make([]WasteScenario, 0, len(wasteFactors))
	for _, w := range wasteFactors {
		grossSqFt := totalSqFt * w.factor
		squares := grossSqFt / SqFtPerSquare
		table = append(table, WasteScenario{
			WastePct:    w.pct,
			Factor:      w.factor,
			Description: w.description,
			GrossSqFt:   math.Round(grossSqFt),
			Squares:     math.Round(squares*10) / 10,
			Bundles:     int(math.Ceil(squares * BundlesPerSquare)),
		})
	}
	return table
}
