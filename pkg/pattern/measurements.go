package pattern

// Measurement keys. Requests arrive as JSON objects keyed by these names,
// and the validator and drafting formulas address measurements the same way.
const (
	KeyChest          = "chest"
	KeyWaist          = "waist"
	KeyHip            = "hip"
	KeyNeck           = "neck"
	KeyShoulderLength = "shoulder_length"
	KeyArmLength      = "arm_length"
	KeyBackLength     = "back_length"
	KeyShirtLength    = "shirt_length"
	KeyBicep          = "bicep"
	KeyWrist          = "wrist"
	KeyArmholeDepth   = "armhole_depth"
)

// Measurements holds the body measurements for one request, in centimeters.
// Treated as read-only once received. Key absence is meaningful: the
// validator reports missing keys separately from range violations.
type Measurements map[string]float64

// MeasurementLabel pairs a measurement key with its display name.
type MeasurementLabel struct {
	Key   string
	Label string
}

// MeasurementLabels lists the display names for all eleven measurements, in
// the order they appear on rendered documents.
var MeasurementLabels = []MeasurementLabel{
	{KeyChest, "Chest Circumference"},
	{KeyWaist, "Waist Circumference"},
	{KeyHip, "Hip Circumference"},
	{KeyNeck, "Neck Circumference"},
	{KeyShoulderLength, "Shoulder Length"},
	{KeyArmLength, "Arm Length"},
	{KeyBackLength, "Back Length"},
	{KeyShirtLength, "Shirt Length"},
	{KeyBicep, "Bicep Circumference"},
	{KeyWrist, "Wrist Circumference"},
	{KeyArmholeDepth, "Armhole Depth"},
}
