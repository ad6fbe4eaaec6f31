package materials

// Coverage and packaging constants for the bill of quantities. Packaging
// sizes follow common North American roofing products.
const (
	SqFtPerSquare    = 100.0 // one roofing "square"
	BundlesPerSquare = 3.0

	UnderlaymentRollSqFt  = 1000.0 // synthetic underlayment
	IceShieldRollSqFt     = 75.0
	IceShieldWidthFt      = 3.0 // membrane strip width along eaves and valleys
	StarterBundleFt       = 105.0
	RidgeCapBundleFt      = 33.0
	DripEdgePieceFt       = 10.0
	ValleyFlashingPieceFt = 10.0
	NailLbsPerSquare      = 1.5
	NailBoxLbs            = 30.0
	RidgeVentPieceFt      = 4.0

	// Shingle weight per square, used by the recycling yield analysis.
	WeightPerSquareArchitectural = 250.0 // lbs
	WeightPerSquare3Tab          = 230.0 // lbs
)

// Complexity factors and their waste percentages.
const (
	wasteSimple      = 10.0
	wasteModerate    = 12.0
	wasteComplex     = 14.0
	wasteVeryComplex = 15.0
)
