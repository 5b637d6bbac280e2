// Package render produces the paginated PDF document summarizing a
// generated pattern: customer block, measurement summary, piece table in
// canonical order, and construction notes.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"patternsmith/pkg/pattern"
)

// Document is the renderer's input contract: the ordered piece list plus the
// customer metadata shown on the document.
type Document struct {
	CustomerName string
	GarmentStyle string
	Fit          pattern.FitCategory
	Measurements pattern.Measurements
	Pieces       []pattern.PatternPiece
	GeneratedAt  time.Time
}

// constructionNotes are printed verbatim at the end of every document.
var constructionNotes = []string{
	"All seam allowances are included in pattern dimensions",
	"Interface collar, collar band, cuffs, and button bands",
	"Press seams toward back where possible",
	"Attach yoke before setting sleeves",
	"Install collar band before attaching collar",
	"Complete plackets before attaching cuffs",
	"Test fit at basting stage before final construction",
}

// Renderer produces PDF pattern documents.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the document and returns the PDF bytes.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	fitLabel := doc.Fit.Label()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s Pattern Specification", doc.GarmentStyle), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated on: %s", doc.GeneratedAt.Format("2006-01-02 at 15:04")), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Fit Type: %s", fitLabel), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d | Pattern for %s", pdf.PageNo(), doc.CustomerName), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Customer: %s", doc.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Fit Type: %s Fit", fitLabel), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	r.measurementSummary(pdf, doc.Measurements)
	r.pieceTable(pdf, doc.Pieces)

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, "Construction Notes:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, note := range constructionNotes {
		pdf.CellFormat(0, 5, "- "+note, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// measurementSummary prints the measurements in two columns, in display
// order.
func (r *Renderer) measurementSummary(pdf *fpdf.Fpdf, m pattern.Measurements) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Measurements Used:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)

	labels := pattern.MeasurementLabels
	half := (len(labels) + 1) / 2
	left, right := labels[:half], labels[half:]

	for i, entry := range left {
		if v, ok := m[entry.Key]; ok {
			pdf.CellFormat(90, 5, fmt.Sprintf("%s: %s cm", entry.Label, pattern.FormatCm(v)), "", 0, "L", false, 0, "")
		}
		if i < len(right) {
			if v, ok := m[right[i].Key]; ok {
				pdf.CellFormat(90, 5, fmt.Sprintf("%s: %s cm", right[i].Label, pattern.FormatCm(v)), "", 1, "L", false, 0, "")
				continue
			}
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}

// pieceTable prints the five-column piece table in canonical order.
func (r *Renderer) pieceTable(pdf *fpdf.Fpdf, pieces []pattern.PatternPiece) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, "Pattern Pieces:", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 8, "Pattern Piece", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Dimensions", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Cutting Notes", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Grainline", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Notches & Details", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, p := range pieces {
		pdf.CellFormat(35, 8, p.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, p.Dimensions(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, p.CuttingNote, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, p.GrainlineLabel(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, strings.Join(p.Notches, ", "), "1", 1, "L", false, 0, "")
	}
}
