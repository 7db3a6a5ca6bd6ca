// =============================================================================
// Trolley Part List Generator - HTTP Upload Surface
// =============================================================================
//
// Serve mode exposes the pipeline over HTTP for teams that prefer the
// browser over the CLI:
//
//   GET  /              minimal upload form
//   GET  /api/health    liveness probe
//   POST /api/generate  multipart upload -> PDF attachment
//
// The generate endpoint accepts:
//   - "manifest"        the Excel export (required)
//   - "logo"            optional top-right logo image (PNG/JPEG)
//   - "logo_width_cm"   optional logo box width in centimeters
//   - "logo_height_cm"  optional logo box height in centimeters
//   - "sheet"           optional worksheet name
//
// Each request runs the pipeline exactly once, synchronously. A schema
// rejection returns 422 with the missing column names; a render failure
// returns 500 with a generic message, never a partial document.
//
// =============================================================================

package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Agilomatrix/Trolley-List/internal/config"
	"github.com/Agilomatrix/Trolley-List/internal/generator"
	"github.com/Agilomatrix/Trolley-List/internal/manifest"
	"github.com/Agilomatrix/Trolley-List/internal/xlsxreader"
)

// Server hosts the upload surface over one Generator instance.
type Server struct {
	cfg *config.Config
	gen *generator.Generator
	log *slog.Logger
}

// New creates a Server.
func New(cfg *config.Config, gen *generator.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, gen: gen, log: logger}
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Get("/", s.handleIndex)
	r.Get("/api/health", s.handleHealth)
	r.Post("/api/generate", s.handleGenerate)

	return r
}

// ListenAndServe starts the HTTP server on the configured address and
// blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.log.Info("listening", "addr", s.cfg.Server.Addr)

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// handleGenerate runs one generation for an uploaded manifest and streams
// the PDF back as an attachment.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Server.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.badRequest(w, r, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("manifest")
	if err != nil {
		s.badRequest(w, r, "missing manifest file")
		return
	}
	defer file.Close()

	table, err := xlsxreader.ReadFrom(file, header.Filename, r.FormValue("sheet"))
	if err != nil {
		s.log.Warn("manifest parse failed", "file", header.Filename, "error", err)
		s.badRequest(w, r, "manifest is not a readable Excel workbook")
		return
	}

	req := generator.Request{
		Table:        table,
		LogoWidthCM:  parseCM(r.FormValue("logo_width_cm")),
		LogoHeightCM: parseCM(r.FormValue("logo_height_cm")),
	}

	// The logo slot is optional; a missing part is simply an omitted logo.
	if logoFile, _, err := r.FormFile("logo"); err == nil {
		defer logoFile.Close()
		req.LogoBytes, _ = io.ReadAll(logoFile)
	}

	result, err := s.gen.Generate(req)
	if err != nil {
		var schemaErr *manifest.SchemaError
		if errors.As(err, &schemaErr) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{
				"error":           "manifest schema rejected",
				"missing_columns": schemaErr.Missing,
			})
			return
		}

		s.log.Error("generation failed", "file", header.Filename, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "document generation failed"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Write(result.PDF)
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

// parseCM parses an optional centimeter form value; anything unparseable
// reads as 0, which takes the layout default.
func parseCM(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// indexHTML is the minimal upload form served at the root.
const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Trolley Part List Generator</title></head>
<body>
  <h1>Trolley Part List Generator</h1>
  <p>Upload the production Excel sheet. Parts are grouped by station,
  trolley and model, one page per trolley.</p>
  <form action="/api/generate" method="post" enctype="multipart/form-data">
    <p><label>Manifest (.xlsx): <input type="file" name="manifest" required></label></p>
    <p><label>Company logo (optional): <input type="file" name="logo"></label></p>
    <p><label>Logo width (cm): <input type="number" name="logo_width_cm" step="0.1" min="0.5" max="10"></label>
       <label>Logo height (cm): <input type="number" name="logo_height_cm" step="0.1" min="0.5" max="5"></label></p>
    <p><button type="submit">Generate PDF</button></p>
  </form>
</body>
</html>
`
