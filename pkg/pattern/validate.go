package pattern

import (
	"fmt"
	"strconv"
)

// MeasurementRange is one row of the valid-range table.
type MeasurementRange struct {
	Key  string
	Min  float64
	Max  float64
	Unit string
}

// MeasurementRanges is the authoritative valid-range table, in validation
// (and error-reporting) order. Bounds are inclusive.
var MeasurementRanges = []MeasurementRange{
	{KeyChest, 80, 150, "cm"},
	{KeyWaist, 60, 130, "cm"},
	{KeyHip, 80, 150, "cm"},
	{KeyNeck, 32, 50, "cm"},
	{KeyShoulderLength, 35, 55, "cm"},
	{KeyArmLength, 55, 80, "cm"},
	{KeyBackLength, 65, 85, "cm"},
	{KeyShirtLength, 70, 95, "cm"},
	{KeyBicep, 25, 45, "cm"},
	{KeyWrist, 14, 22, "cm"},
	{KeyArmholeDepth, 18, 28, "cm"},
}

// Validate checks all eleven measurements against the range table and
// returns every violation. It never stops at the first failure: callers
// render the complete error set in a single response. An empty result means
// the measurements are valid.
func Validate(m Measurements) []string {
	var errs []string
	for _, r := range MeasurementRanges {
		value, ok := m[r.Key]
		if !ok {
			errs = append(errs, fmt.Sprintf("Missing measurement: %s", r.Key))
			continue
		}
		if value < r.Min || value > r.Max {
			errs = append(errs, fmt.Sprintf("%s: %s%s is outside valid range (%s-%s%s)",
				r.Key, FormatCm(value), r.Unit, FormatCm(r.Min), FormatCm(r.Max), r.Unit))
		}
	}
	return errs
}

// FormatCm renders a centimeter value without trailing zeros: 200 not
// "200.0", 200.5 as "200.5".
func FormatCm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
