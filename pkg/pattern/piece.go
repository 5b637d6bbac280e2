package pattern

import "fmt"

// Grainline is the fabric-grain orientation for cutting a piece.
type Grainline string

const (
	GrainlineVertical   Grainline = "Vertical"
	GrainlineHorizontal Grainline = "Horizontal"
)

// PatternPiece is one garment piece specification. Dimensions are in
// centimeters, rounded to one decimal place. Pieces are produced only by
// Generate and never mutated afterwards.
type PatternPiece struct {
	Name          string    `json:"name"`
	WidthCm       float64   `json:"width_cm"`
	HeightCm      float64   `json:"height_cm"`
	CuttingNote   string    `json:"cutting_note"`
	Grainline     Grainline `json:"grainline"`
	GrainlineNote string    `json:"grainline_note,omitempty"`
	Notches       []string  `json:"notches"`
}

// GrainlineLabel returns the display form of the grainline, e.g.
// "Vertical (parallel to center front)".
func (p PatternPiece) GrainlineLabel() string {
	if p.GrainlineNote == "" {
		return string(p.Grainline)
	}
	return fmt.Sprintf("%s (%s)", p.Grainline, p.GrainlineNote)
}

// Dimensions returns the "W x H cm" display string used in piece tables.
func (p PatternPiece) Dimensions() string {
	return fmt.Sprintf("%.1f x %.1f cm", p.WidthCm, p.HeightCm)
}
