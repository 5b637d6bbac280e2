package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternsmith/internal/core"
	"patternsmith/internal/render"
	"patternsmith/internal/store"
)

func measurementsJSON() map[string]float64 {
	return map[string]float64{
		"chest":           102,
		"waist":           86,
		"hip":             98,
		"neck":            39,
		"shoulder_length": 45,
		"arm_length":      64,
		"back_length":     75,
		"shirt_length":    76,
		"bicep":           34,
		"wrist":           17,
		"armhole_depth":   22,
	}
}

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.PatternsDir = t.TempDir()

	logger := core.NewLogger("error", "json")
	st, err := store.New(cfg.PatternsDir)
	require.NoError(t, err)
	gen := core.NewGenerator(render.NewRenderer(), st, logger)
	return New(cfg, logger, gen, st), st
}

func postGenerate(t *testing.T, handler http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestInfoEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["patterns_folder_writable"])
}

func TestFitGuideEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fit-guide", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	guide, ok := body["fit_guide"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, guide, "fit_types")
	assert.Contains(t, guide, "measurement_tips")
}

func TestGenerateSuccess(t *testing.T) {
	srv, st := newTestServer(t)
	handler := srv.Handler()

	w := postGenerate(t, handler, map[string]any{
		"measurements": measurementsJSON(),
		"user_name":    "Test User",
		"fit_type":     "regular",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "regular", body["fit_type"])
	assert.Equal(t, float64(10), body["pattern_pieces_count"])
	assert.Equal(t, "Regular fit shirt pattern generated successfully for Test User", body["message"])

	pieces, ok := body["pattern_data"].([]any)
	require.True(t, ok)
	require.Len(t, pieces, 10)
	first := pieces[0].(map[string]any)
	assert.Equal(t, "Front Bodice", first["name"])
	assert.Equal(t, 24.2, first["width_cm"])
	assert.Equal(t, 78.5, first["height_cm"])

	// The document is downloadable through the returned URL.
	url, ok := body["download_url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "/download/"))

	dw := httptest.NewRecorder()
	handler.ServeHTTP(dw, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, dw.Code)
	assert.Equal(t, "application/pdf", dw.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(dw.Body.String(), "%PDF"))

	entries, err := st.List("")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerateDefaults(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postGenerate(t, srv.Handler(), map[string]any{
		"measurements": measurementsJSON(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "regular", body["fit_type"])
	assert.Equal(t, "Regular fit shirt pattern generated successfully for Customer", body["message"])
	assert.Contains(t, body["download_url"], "men's_dress_shirt_regular_pattern_")
}

func TestGenerateRequiresJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("chest=102"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request must be JSON", decodeBody(t, w)["message"])
}

func TestGenerateInvalidMeasurements(t *testing.T) {
	srv, _ := newTestServer(t)
	m := measurementsJSON()
	m["chest"] = 200
	delete(m, "wrist")

	w := postGenerate(t, srv.Handler(), map[string]any{"measurements": m})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid input data", body["message"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, "chest: 200cm is outside valid range (80-150cm)", errs[0])
	assert.Equal(t, "Missing measurement: wrist", errs[1])
}

func TestGenerateUnknownFit(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postGenerate(t, srv.Handler(), map[string]any{
		"measurements": measurementsJSON(),
		"fit_type":     "baggy",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unknown fit category")
}

func TestGenerateSchemaLimits(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postGenerate(t, srv.Handler(), map[string]any{
		"measurements":  measurementsJSON(),
		"user_name":     strings.Repeat("x", 101),
		"garment_style": strings.Repeat("y", 51),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs, ok := decodeBody(t, w)["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestDownloadInvalidFilename(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/notes.txt", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid filename", decodeBody(t, w)["message"])
}

func TestDownloadNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/missing_pattern.pdf", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decodeBody(t, w)["message"])
}

func TestListPatterns(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.Save("a_slim_pattern.pdf", []byte("%PDF-a")))
	require.NoError(t, st.Save("b_loose_pattern.pdf", []byte("%PDF-b")))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patterns", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])
	patterns, ok := body["patterns"].([]any)
	require.True(t, ok)
	require.Len(t, patterns, 2)
	first := patterns[0].(map[string]any)
	assert.Contains(t, first, "filename")
	assert.Contains(t, first, "download_url")
	assert.Contains(t, first, "fit_type")
}

func TestListPatternsGlobFilter(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.Save("a_slim_pattern.pdf", []byte("%PDF-a")))
	require.NoError(t, st.Save("b_loose_pattern.pdf", []byte("%PDF-b")))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patterns?match=*loose*.pdf", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["total"])
}

func TestRateLimitExceeded(t *testing.T) {
	srv, st := newTestServer(t)
	srv.cfg.ListRateLimit = 2
	handler := srv.Handler()
	require.NoError(t, st.Save("a_regular_pattern.pdf", []byte("%PDF-a")))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		handler.ServeHTTP(last, req)
		if i < 2 {
			require.Equal(t, http.StatusOK, last.Code, fmt.Sprintf("request %d", i))
		}
	}
	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", decodeBody(t, last)["message"])

	// A different client is unaffected.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodySizeLimit(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.cfg.MaxBodyBytes = 64
	handler := srv.Handler()

	big := map[string]any{
		"measurements": measurementsJSON(),
		"user_name":    strings.Repeat("x", 100),
	}
	w := postGenerate(t, handler, big)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
