package core

import (
	"fmt"
	"time"

	"patternsmith/internal/render"
	"patternsmith/internal/store"
	"patternsmith/pkg/pattern"
)

// GenerateRequest bundles one pattern generation request: measurements, fit,
// and the display metadata carried onto the rendered document. Owned by a
// single request lifecycle and discarded after the response.
type GenerateRequest struct {
	Measurements pattern.Measurements
	Fit          pattern.FitCategory
	CustomerName string
	GarmentStyle string
}

// Result describes one generated pattern document.
type Result struct {
	Pieces      []pattern.PatternPiece
	Filename    string
	Fit         pattern.FitCategory
	GeneratedAt time.Time
}

// Generator runs the measurement-to-document pipeline: engine, renderer,
// store.
type Generator struct {
	renderer *render.Renderer
	store    *store.Store
	logger   Logger
	now      func() time.Time
}

// NewGenerator creates a generator over a renderer and a document store.
func NewGenerator(renderer *render.Renderer, st *store.Store, logger Logger) *Generator {
	return &Generator{
		renderer: renderer,
		store:    st,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate computes the pattern pieces for a request, renders the document,
// and stores it under a derived filename. Engine validation failures pass
// through as *pattern.InvalidMeasurementsError.
func (g *Generator) Generate(req *GenerateRequest) (*Result, error) {
	pieces, err := pattern.Generate(req.Measurements, req.Fit)
	if err != nil {
		return nil, err
	}

	generatedAt := g.now()
	doc := &render.Document{
		CustomerName: req.CustomerName,
		GarmentStyle: req.GarmentStyle,
		Fit:          req.Fit,
		Measurements: req.Measurements,
		Pieces:       pieces,
		GeneratedAt:  generatedAt,
	}
	data, err := g.renderer.Render(doc)
	if err != nil {
		return nil, &RenderError{Document: req.GarmentStyle, Err: err}
	}

	filename, err := pattern.NewDocumentFilename(req.GarmentStyle, req.Fit, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("derive filename: %w", err)
	}
	if err := g.store.Save(filename, data); err != nil {
		return nil, &StorageError{Operation: "save", Path: filename, Err: err}
	}

	g.logger.Info("pattern generated",
		"customer", req.CustomerName,
		"fit", string(req.Fit),
		"file", filename,
		"pieces", len(pieces),
	)

	return &Result{
		Pieces:      pieces,
		Filename:    filename,
		Fit:         req.Fit,
		GeneratedAt: generatedAt,
	}, nil
}
