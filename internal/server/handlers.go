package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"patternsmith/internal/core"
	"patternsmith/internal/store"
	"patternsmith/pkg/pattern"
)

// handleInfo serves the service banner and endpoint map.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"message":        "Shirt Pattern Generator Backend is Running",
		"version":        Version,
		"supported_fits": pattern.FitCategories,
		"endpoints": map[string]string{
			"generate": "/generate",
			"download": "/download/<filename>",
			"health":   "/health",
			"patterns": "/patterns",
		},
	})
}

// handleHealth probes that the patterns directory is writable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	probe := filepath.Join(s.store.Dir(), ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		s.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	os.Remove(probe)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":                   "healthy",
		"timestamp":                time.Now().Format(time.RFC3339),
		"patterns_folder":          s.store.Dir(),
		"patterns_folder_writable": true,
		"supported_garments":       []string{"Men's Dress Shirt", "Casual Shirt"},
		"supported_fits":           pattern.FitCategories,
	})
}

// generateRequest is the wire form of a pattern request. Measurements arrive
// as a JSON object so missing keys stay distinguishable from zero values.
type generateRequest struct {
	Measurements map[string]float64 `json:"measurements"`
	UserName     string             `json:"user_name"`
	GarmentStyle string             `json:"garment_style"`
	FitType      string             `json:"fit_type"`
}

// validateSchema applies the boundary checks and defaults: name lengths, fit
// whitelist. Measurement range checking belongs to the engine.
func (req *generateRequest) validateSchema() []string {
	var errs []string
	if req.Measurements == nil {
		errs = append(errs, "measurements: required field")
	}
	if req.UserName == "" {
		req.UserName = "Customer"
	} else if len(req.UserName) > 100 {
		errs = append(errs, "user_name: must be at most 100 characters")
	}
	if req.GarmentStyle == "" {
		req.GarmentStyle = "Men's Dress Shirt"
	} else if len(req.GarmentStyle) > 50 {
		errs = append(errs, "garment_style: must be at most 50 characters")
	}
	if req.FitType == "" {
		req.FitType = string(pattern.FitRegular)
	} else if _, err := pattern.ResolveFit(req.FitType); err != nil {
		errs = append(errs, fmt.Sprintf("fit_type: %v", err))
	}
	return errs
}

// handleGenerate runs the full pipeline for one request.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Request must be JSON",
		})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{
				"status":  "error",
				"message": "File too large. Maximum size is 16MB.",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Invalid input data",
			"errors":  []string{err.Error()},
		})
		return
	}

	if errs := req.validateSchema(); len(errs) > 0 {
		s.logger.Warn("request schema validation failed", "errors", errs)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Invalid input data",
			"errors":  errs,
		})
		return
	}
	fit, _ := pattern.ResolveFit(req.FitType)

	result, err := s.generator.Generate(&core.GenerateRequest{
		Measurements: pattern.Measurements(req.Measurements),
		Fit:          fit,
		CustomerName: req.UserName,
		GarmentStyle: req.GarmentStyle,
	})
	if err != nil {
		var invalid *pattern.InvalidMeasurementsError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": "Invalid input data",
				"errors":  invalid.Errors,
			})
			return
		}
		s.logger.Error("pattern generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": "Failed to generate shirt pattern",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "success",
		"message":              fmt.Sprintf("%s fit shirt pattern generated successfully for %s", fit.Label(), req.UserName),
		"pattern_data":         result.Pieces,
		"download_url":         "/download/" + result.Filename,
		"fit_type":             string(result.Fit),
		"generated_at":         result.GeneratedAt.Format(time.RFC3339),
		"pattern_pieces_count": len(result.Pieces),
	})
}

// handleDownload serves a stored pattern document.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	path, err := s.store.Resolve(filename)
	switch {
	case errors.Is(err, store.ErrInvalidFilename):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Invalid filename",
		})
		return
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"status":  "error",
			"message": "File not found",
		})
		return
	case err != nil:
		s.logger.Error("resolve download", "file", filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": "Error downloading file",
		})
		return
	}

	s.logger.Info("serving file", "file", filename)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// listedPattern is one listing row, the stored entry plus its download URL.
type listedPattern struct {
	store.Entry
	DownloadURL string `json:"download_url"`
}

// handleList returns the stored documents, newest first. An optional "match"
// query filters filenames by glob.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.URL.Query().Get("match"))
	if err != nil {
		s.logger.Error("list patterns", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": "Error listing patterns",
		})
		return
	}

	patterns := make([]listedPattern, 0, len(entries))
	for _, e := range entries {
		patterns = append(patterns, listedPattern{
			Entry:       e,
			DownloadURL: "/download/" + e.Filename,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"patterns":       patterns,
		"total":          len(patterns),
		"supported_fits": pattern.FitCategories,
	})
}
