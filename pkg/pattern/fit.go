package pattern

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FitCategory selects the ease profile applied to the drafting formulas.
type FitCategory string

const (
	FitSlim    FitCategory = "slim"
	FitRegular FitCategory = "regular"
	FitLoose   FitCategory = "loose"
)

// FitCategories lists the supported fits in display order.
var FitCategories = []FitCategory{FitSlim, FitRegular, FitLoose}

// EaseProfile holds the ease constants for one fit category, in centimeters.
// Profiles are fixed at process start and never mutated, so they are safe to
// share across concurrent requests.
type EaseProfile struct {
	ChestEase          float64
	ArmscyeHeightBack  float64
	ArmscyeHeightFront float64
	FrontWidthEase     float64
	BackWidthEase      float64
	ArmscyeWidthEase   float64
}

var easeProfiles = map[FitCategory]EaseProfile{
	FitSlim: {
		ChestEase:          3.0,
		ArmscyeHeightBack:  3.0,
		ArmscyeHeightFront: 3.0,
		FrontWidthEase:     0.75,
		BackWidthEase:      1.25,
		ArmscyeWidthEase:   3.5,
	},
	FitRegular: {
		ChestEase:          4.0,
		ArmscyeHeightBack:  4.0,
		ArmscyeHeightFront: 4.0,
		FrontWidthEase:     1.0,
		BackWidthEase:      2.0,
		ArmscyeWidthEase:   4.5,
	},
	FitLoose: {
		ChestEase:          5.0,
		ArmscyeHeightBack:  5.0,
		ArmscyeHeightFront: 5.0,
		FrontWidthEase:     1.5,
		BackWidthEase:      3.0,
		ArmscyeWidthEase:   5.5,
	},
}

// Sleeve ease is its own table, independent of EaseProfile.
var bicepEase = map[FitCategory]float64{
	FitSlim:    6.0,
	FitRegular: 8.0,
	FitLoose:   10.0,
}

var fitTitle = cases.Title(language.English)

// ResolveFit parses a fit category string. Callers at the service boundary
// must reject unknown fits before invoking the engine.
func ResolveFit(s string) (FitCategory, error) {
	switch fit := FitCategory(s); fit {
	case FitSlim, FitRegular, FitLoose:
		return fit, nil
	}
	return "", &UnknownFitCategoryError{Value: s}
}

// Ease returns the ease profile for the fit category. The engine assumes the
// category has already been resolved.
func (f FitCategory) Ease() EaseProfile {
	return easeProfiles[f]
}

// Label returns the display form of the fit category, e.g. "Regular".
func (f FitCategory) Label() string {
	return fitTitle.String(string(f))
}
