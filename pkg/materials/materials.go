// Package materials turns a measurement report into material quantity
// estimates for a roofing job: a bill of quantities, waste scenarios, and a
// recycled-shingle yield analysis. Quantities only; pricing is a concern of
// the ordering system.
package materials

import (
	"math"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/measure"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// ShingleType selects the shingle product the quantities are computed for.
type ShingleType string

const (
	ShingleArchitectural ShingleType = "architectural"
	Shingle3Tab          ShingleType = "3tab"
)

// WeightPerSquare returns the installed shingle weight in lbs per square.
func (s ShingleType) WeightPerSquare() float64 {
	if s == Shingle3Tab {
		return WeightPerSquare3Tab
	}
	return WeightPerSquareArchitectural
}

// LineItem is a single entry on the bill of quantities.
type LineItem struct {
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Unit          string  `json:"unit"`
	NetQuantity   float64 `json:"net_quantity"`
	WastePct      float64 `json:"waste_pct"`
	GrossQuantity float64 `json:"gross_quantity"`
	OrderQuantity float64 `json:"order_quantity"`
	OrderUnit     string  `json:"order_unit"`
}

// Estimate is the complete material quantity output for one roof.
type Estimate struct {
	NetAreaSqFt      float64         `json:"net_area_sqft"`
	WastePct         float64         `json:"waste_pct"`
	GrossAreaSqFt    float64         `json:"gross_area_sqft"`
	GrossSquares     float64         `json:"gross_squares"`
	BundleCount      int             `json:"bundle_count"`
	LineItems        []LineItem      `json:"line_items"`
	ComplexityFactor float64         `json:"complexity_factor"`
	ComplexityClass  ComplexityClass `json:"complexity_class"`
	ShingleType      ShingleType     `json:"shingle_type"`
	PitchStats       PitchStats      `json:"pitch_stats"`
}

// EstimateQuantities computes the bill of quantities from a measurement
// report. The complexity class sets the base waste percentage for shingles;
// accessory items carry their own conventional waste rates.
func EstimateQuantities(r *measure.Report, shingle ShingleType) *Estimate {
	degrees := make([]float64, 0, len(r.Facets))
	for _, f := range r.Facets {
		degrees = append(degrees, f.PitchDegrees)
	}
	stats := pitchStats(degrees)

	factor, class := classifyComplexity(
		len(r.Facets),
		r.LineTotals[vision.LineHip].Count,
		r.LineTotals[vision.LineValley].Count,
		stats.MaxDegrees-stats.MinDegrees,
	)
	baseWaste := class.WastePct()

	netArea := r.TotalAreaSqFt
	grossArea := netArea * (1 + baseWaste/100)
	grossSquares := math.Ceil(grossArea/SqFtPerSquare*10) / 10
	bundleCount := int(math.Ceil(grossSquares * BundlesPerSquare))

	ridgeFt := r.LineTotals[vision.LineRidge].TotalLengthFt
	hipFt := r.LineTotals[vision.LineHip].TotalLengthFt
	valleyFt := r.LineTotals[vision.LineValley].TotalLengthFt
	eaveFt := r.LineTotals[vision.LineEave].TotalLengthFt
	rakeFt := r.LineTotals[vision.LineRake].TotalLengthFt

	items := []LineItem{
		shingleItem(shingle, netArea, baseWaste, grossSquares, bundleCount),
		underlaymentItem(netArea, grossArea),
		iceShieldItem(eaveFt, valleyFt),
		starterStripItem(eaveFt, rakeFt),
		ridgeCapItem(ridgeFt, hipFt),
		dripEdgeItem(eaveFt, rakeFt),
	}
	if valleyFt > 0 {
		items = append(items, valleyFlashingItem(valleyFt))
	}
	items = append(items, nailItem(grossSquares))
	if ridgeFt > 0 {
		items = append(items, ridgeVentItem(ridgeFt))
	}

	return &Estimate{
		NetAreaSqFt:      math.Round(netArea),
		WastePct:         baseWaste,
		GrossAreaSqFt:    math.Round(grossArea),
		GrossSquares:     grossSquares,
		BundleCount:      bundleCount,
		LineItems:        items,
		ComplexityFactor: factor,
		ComplexityClass:  class,
		ShingleType:      shingle,
		PitchStats:       stats,
	}
}

func shingleItem(shingle ShingleType, netArea, waste, grossSquares float64, bundles int) LineItem {
	desc := "Architectural (Laminate) Shingles"
	if shingle == Shingle3Tab {
		desc = "3-Tab Standard Shingles"
	}
	return LineItem{
		Category:      "shingles",
		Description:   desc,
		Unit:          "squares",
		NetQuantity:   math.Round(netArea/SqFtPerSquare*10) / 10,
		WastePct:      waste,
		GrossQuantity: grossSquares,
		OrderQuantity: float64(bundles),
		OrderUnit:     "bundles",
	}
}

func underlaymentItem(netArea, grossArea float64) LineItem {
	rolls := math.Ceil(grossArea / UnderlaymentRollSqFt)
	return LineItem{
		Category:      "underlayment",
		Description:   "Synthetic Underlayment",
		Unit:          "rolls",
		NetQuantity:   math.Ceil(netArea / UnderlaymentRollSqFt),
		WastePct:      10,
		GrossQuantity: rolls,
		OrderQuantity: rolls,
		OrderUnit:     "rolls",
	}
}

// iceShieldItem covers the first strip above the eaves plus valley runs,
// per cold-climate code.
func iceShieldItem(eaveFt, valleyFt float64) LineItem {
	sqft := (eaveFt + valleyFt) * IceShieldWidthFt
	rolls := math.Ceil(sqft / IceShieldRollSqFt)
	return LineItem{
		Category:      "ice_shield",
		Description:   "Ice & Water Shield Membrane",
		Unit:          "rolls",
		NetQuantity:   rolls,
		WastePct:      5,
		GrossQuantity: rolls,
		OrderQuantity: rolls,
		OrderUnit:     "rolls",
	}
}

func starterStripItem(eaveFt, rakeFt float64) LineItem {
	linearFt := eaveFt + rakeFt
	return LineItem{
		Category:      "starter_strip",
		Description:   "Starter Strip Shingles",
		Unit:          "linear_ft",
		NetQuantity:   math.Round(linearFt),
		WastePct:      5,
		GrossQuantity: math.Round(linearFt * 1.05),
		OrderQuantity: math.Ceil(linearFt / StarterBundleFt),
		OrderUnit:     "bundles",
	}
}

func ridgeCapItem(ridgeFt, hipFt float64) LineItem {
	linearFt := ridgeFt + hipFt
	return LineItem{
		Category:      "ridge_cap",
		Description:   "Ridge/Hip Cap Shingles",
		Unit:          "linear_ft",
		NetQuantity:   math.Round(linearFt),
		WastePct:      5,
		GrossQuantity: math.Round(linearFt * 1.05),
		OrderQuantity: math.Ceil(linearFt / RidgeCapBundleFt),
		OrderUnit:     "bundles",
	}
}

func dripEdgeItem(eaveFt, rakeFt float64) LineItem {
	pieces := math.Ceil((eaveFt + rakeFt) / DripEdgePieceFt)
	return LineItem{
		Category:      "drip_edge",
		Description:   "Aluminum Drip Edge (10 ft sections)",
		Unit:          "pieces",
		NetQuantity:   pieces,
		WastePct:      5,
		GrossQuantity: pieces,
		OrderQuantity: pieces,
		OrderUnit:     "pieces",
	}
}

func valleyFlashingItem(valleyFt float64) LineItem {
	pieces := math.Ceil(valleyFt / ValleyFlashingPieceFt)
	return LineItem{
		Category:      "valley_metal",
		Description:   "Pre-bent Valley Flashing (W-valley, 10 ft)",
		Unit:          "pieces",
		NetQuantity:   pieces,
		WastePct:      10,
		GrossQuantity: pieces,
		OrderQuantity: pieces,
		OrderUnit:     "pieces",
	}
}

func nailItem(grossSquares float64) LineItem {
	lbs := math.Ceil(grossSquares * NailLbsPerSquare)
	return LineItem{
		Category:      "nails",
		Description:   `1-1/4" Galvanized Roofing Nails (30 lb box)`,
		Unit:          "lbs",
		NetQuantity:   math.Round(grossSquares * NailLbsPerSquare),
		WastePct:      0,
		GrossQuantity: lbs,
		OrderQuantity: math.Ceil(lbs / NailBoxLbs),
		OrderUnit:     "boxes",
	}
}

func ridgeVentItem(ridgeFt float64) LineItem {
	pieces := math.Ceil(ridgeFt / RidgeVentPieceFt)
	return LineItem{
		Category:      "ventilation",
		Description:   "Ridge Vent (4 ft sections)",
		Unit:          "pieces",
		NetQuantity:   pieces,
		WastePct:      5,
		GrossQuantity: pieces,
		OrderQuantity: pieces,
		OrderUnit:     "pieces",
	}
}
