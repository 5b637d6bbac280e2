package pattern

// Seam allowances in centimeters, industry standard.
const (
	SeamStandard   = 1.5 // Standard construction seams
	SeamShoulder   = 1.0 // Shoulder seams
	SeamArmhole    = 1.0 // Armhole seams
	SeamNeckline   = 0.6 // Neckline seams
	SeamHem        = 2.5 // Bottom hem
	SeamCuff       = 1.0 // Cuff attachment
	SeamButtonBand = 1.5 // Button placket
)

// Garment component base dimensions in centimeters.
const (
	YokeHeight        = 8.0  // Back yoke height
	BackPleat         = 3.0  // Center back pleat
	ButtonPanelWidth  = 5.5  // Button band width
	CollarHeightBack  = 3.8  // Collar height at center back
	CollarFrontHeight = 7.0  // Collar height at front
	CollarBaseHeight  = 2.0  // Collar stand height
	CuffWidth         = 6.0  // Cuff height
	CuffExtension     = 3.0  // Cuff ease
	PlacketDepth      = 15.0 // Sleeve placket depth
	PlacketWidth      = 3.0  // Sleeve placket width
	PocketWidth       = 9.0  // Chest pocket width
	PocketHeight      = 13.0 // Chest pocket height
	ArmscyeDrop       = 1.0  // Armhole lowering
	ShoulderDropBack  = 2.0  // Back shoulder slope
	ShoulderDropFront = 4.0  // Front shoulder slope
	ShoulderShift     = 1.5  // Shoulder seam shift
)
