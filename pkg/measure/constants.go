package measure

// Unit conversion and correction constants.
const (
	// SqFtPerSqM converts square meters to square feet.
	SqFtPerSqM = 10.7639

	// FtPerM converts meters to feet.
	FtPerM = 3.28084

	// slopedElongation is the empirical length correction for line segments
	// that run along the roof slope (hips, valleys, rakes) rather than
	// horizontally (ridges, eaves).
	slopedElongation = 1.15

	// DefaultReferenceGroundAreaM2 is the assumed ground footprint of a
	// typical detached residential property. A rough calibration stand-in,
	// not a measured truth; callers should override it whenever a better
	// per-property value exists.
	DefaultReferenceGroundAreaM2 = 185.0
)
