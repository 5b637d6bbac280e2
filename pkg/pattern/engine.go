package pattern

import "math"

// Derived holds the working quantities shared by the piece builders,
// computed once per generation.
type Derived struct {
	BustCirc     float64
	FrontWidth   float64
	BackWidth    float64
	ArmscyeWidth float64
}

// minFrontWidth is the practical floor on the front width formula. Small
// drafts clamp here instead of erroring. Back width carries no floor; the
// asymmetry matches the reference drafting formulas.
const minFrontWidth = 8.0

// Derive computes the working quantities from the chest measurement and fit
// ease. Front and back width are piecewise with different size thresholds
// (112 and 100); both branches reproduce the reference formulas as-is.
func Derive(m Measurements, fit FitCategory) Derived {
	ease := fit.Ease()
	bust := m[KeyChest] + ease.ChestEase
	return Derived{
		BustCirc:     bust,
		FrontWidth:   frontWidth(bust, ease),
		BackWidth:    backWidth(bust, ease),
		ArmscyeWidth: bust/10 + 2 + ease.ArmscyeWidthEase,
	}
}

func frontWidth(bust float64, ease EaseProfile) float64 {
	var w float64
	if bust < 112 {
		w = bust/5 - 1 + ease.FrontWidthEase
	} else {
		armscye := bust/10 + 2
		back := bust/10 + 10.5
		w = bust/2 - (armscye + back) + ease.FrontWidthEase
	}
	return math.Max(w, minFrontWidth)
}

func backWidth(bust float64, ease EaseProfile) float64 {
	if bust < 100 {
		return bust/5 - 1 + ease.BackWidthEase
	}
	return bust/10 + 10.5 + ease.BackWidthEase
}

// Generate derives the ten pattern pieces for a set of measurements and a
// fit category, in canonical construction-reference order: Front Bodice,
// Back Bodice, Back Yoke, Sleeve, Cuff, Collar Band, Collar, Button Band,
// Sleeve Placket, Chest Pocket. Consumers rely on this order for table
// layout and construction-notes sequencing.
//
// Measurements are validated first; any failure returns
// InvalidMeasurementsError with the complete error list and no pieces. The
// function is pure: identical inputs yield identical output.
func Generate(m Measurements, fit FitCategory) ([]PatternPiece, error) {
	if errs := Validate(m); len(errs) > 0 {
		return nil, &InvalidMeasurementsError{Errors: errs}
	}

	d := Derive(m, fit)
	return []PatternPiece{
		frontBodice(m, d),
		backBodice(m, d),
		backYoke(d),
		sleeve(m, fit),
		cuff(m),
		collarBand(m),
		collar(m),
		buttonBand(m),
		sleevePlacket(),
		chestPocket(),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func frontBodice(m Measurements, d Derived) PatternPiece {
	return PatternPiece{
		Name:          "Front Bodice",
		WidthCm:       round1(d.FrontWidth + SeamStandard*2),
		HeightCm:      round1(m[KeyShirtLength] + SeamHem),
		CuttingNote:   "Cut 2 (1 left, 1 right)",
		Grainline:     GrainlineVertical,
		GrainlineNote: "parallel to center front",
		Notches:       []string{"Shoulder point", "armhole", "side seam", "button band"},
	}
}

func backBodice(m Measurements, d Derived) PatternPiece {
	return PatternPiece{
		Name:          "Back Bodice",
		WidthCm:       round1(d.BackWidth + SeamStandard*2),
		HeightCm:      round1(m[KeyShirtLength] + SeamHem),
		CuttingNote:   "Cut 1 on fold or Cut 2",
		Grainline:     GrainlineVertical,
		GrainlineNote: "parallel to center back",
		Notches:       []string{"Shoulder point", "armhole", "side seam", "center back"},
	}
}

func backYoke(d Derived) PatternPiece {
	return PatternPiece{
		Name:        "Back Yoke",
		WidthCm:     round1(d.BackWidth + SeamStandard*2),
		HeightCm:    round1(YokeHeight + SeamStandard*2),
		CuttingNote: "Cut 2 (1 outer, 1 lining)",
		Grainline:   GrainlineHorizontal,
		Notches:     []string{"Shoulder points", "center back", "armhole"},
	}
}

func sleeve(m Measurements, fit FitCategory) PatternPiece {
	return PatternPiece{
		Name:          "Sleeve",
		WidthCm:       round1(m[KeyBicep] + bicepEase[fit] + SeamStandard*2),
		HeightCm:      round1(m[KeyArmLength] + SeamCuff + 2.0),
		CuttingNote:   "Cut 2",
		Grainline:     GrainlineVertical,
		GrainlineNote: "parallel to center line",
		Notches:       []string{"Front armhole", "back armhole", "elbow", "wrist"},
	}
}

func cuff(m Measurements) PatternPiece {
	// Cuff circumference is wrist plus ease plus button overlap.
	circumference := m[KeyWrist] + CuffExtension + 3.0
	return PatternPiece{
		Name:        "Cuff",
		WidthCm:     round1(circumference + SeamStandard*2),
		HeightCm:    round1(CuffWidth + SeamStandard*2),
		CuttingNote: "Cut 4 (2 outer, 2 interfacing)",
		Grainline:   GrainlineHorizontal,
		Notches:     []string{"Button placement", "center fold"},
	}
}

func collarBand(m Measurements) PatternPiece {
	// Band length is neck circumference plus ease plus button overlap.
	return PatternPiece{
		Name:        "Collar Band",
		WidthCm:     round1(m[KeyNeck] + 2.0 + 1.5),
		HeightCm:    round1(CollarBaseHeight + SeamNeckline*2),
		CuttingNote: "Cut 4 (2 outer, 2 interfacing)",
		Grainline:   GrainlineHorizontal,
		Notches:     []string{"Center back", "button placement", "collar attachment"},
	}
}

func collar(m Measurements) PatternPiece {
	// Collar length matches the band, plus spread.
	return PatternPiece{
		Name:        "Collar",
		WidthCm:     round1(m[KeyNeck] + 3.5),
		HeightCm:    round1(CollarFrontHeight + SeamStandard),
		CuttingNote: "Cut 4 (2 outer, 2 interfacing)",
		Grainline:   GrainlineHorizontal,
		Notches:     []string{"Center back", "collar points", "band attachment"},
	}
}

func buttonBand(m Measurements) PatternPiece {
	return PatternPiece{
		Name:        "Button Band",
		WidthCm:     round1(ButtonPanelWidth + SeamButtonBand*2),
		HeightCm:    round1(m[KeyShirtLength] * 0.7),
		CuttingNote: "Cut 2 (1 button, 1 buttonhole)",
		Grainline:   GrainlineVertical,
		Notches:     []string{"Button placement marks", "hem attachment"},
	}
}

func sleevePlacket() PatternPiece {
	return PatternPiece{
		Name:        "Sleeve Placket",
		WidthCm:     round1(PlacketWidth + SeamStandard*2),
		HeightCm:    round1(PlacketDepth + SeamStandard*2),
		CuttingNote: "Cut 4 (2 per sleeve)",
		Grainline:   GrainlineVertical,
		Notches:     []string{"Fold line", "attachment points"},
	}
}

func chestPocket() PatternPiece {
	return PatternPiece{
		Name:        "Chest Pocket",
		WidthCm:     round1(PocketWidth + SeamStandard*2),
		HeightCm:    round1(PocketHeight + SeamStandard*2),
		CuttingNote: "Cut 2 (1 outer, 1 lining)",
		Grainline:   GrainlineVertical,
		Notches:     []string{"Fold line", "attachment points"},
	}
}
