// Package server is the HTTP boundary: request schema checks, rate
// limiting, and translation of engine errors into client-facing responses.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"patternsmith/internal/core"
	"patternsmith/internal/store"
)

// Version reported on the info endpoint.
const Version = "1.0.0"

// Server wires the handlers, middleware, and rate limits together.
type Server struct {
	cfg       *core.Config
	logger    core.Logger
	generator *core.Generator
	store     *store.Store
}

// New creates a Server.
func New(cfg *core.Config, logger core.Logger, generator *core.Generator, st *store.Store) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		generator: generator,
		store:     st,
	}
}

// Handler returns the root http.Handler with logging and body-size limits
// applied. Rate limits follow the per-route budgets from the configuration.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /fit-guide", s.handleFitGuide)
	mux.Handle("POST /generate", s.limit(s.cfg.GenerateRateLimit, http.HandlerFunc(s.handleGenerate)))
	mux.Handle("GET /download/{filename}", s.limit(s.cfg.DownloadRateLimit, http.HandlerFunc(s.handleDownload)))
	mux.Handle("GET /patterns", s.limit(s.cfg.ListRateLimit, http.HandlerFunc(s.handleList)))

	var handler http.Handler = mux
	handler = http.MaxBytesHandler(handler, s.cfg.MaxBodyBytes)
	return s.logRequests(handler)
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
