// =============================================================================
// Trolley Part List Generator - Pipeline Orchestrator
// =============================================================================
//
// This module runs the full generation pipeline for one manifest:
//
//   1. Validate the manifest schema (required columns, reported eagerly)
//   2. Normalize columns (fill missing values, materialize optionals)
//   3. Resolve trolley ids (one derivation branch per table)
//   4. Partition rows into page groups (deterministic sorted order)
//   5. Compose one page per group
//   6. Assemble the pages into the PDF byte stream
//
// The pipeline is synchronous and self-contained: it works on its own copy
// of the table, holds no state between invocations, and releases its image
// resources when the call returns. Schema failures surface as
// *manifest.SchemaError before any rendering; asset problems degrade with
// a warning; render failures propagate to the caller untouched.
//
// =============================================================================

package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/Agilomatrix/Trolley-List/internal/config"
	"github.com/Agilomatrix/Trolley-List/internal/layout"
	"github.com/Agilomatrix/Trolley-List/internal/manifest"
	"github.com/Agilomatrix/Trolley-List/internal/pdfwriter"
	"github.com/Agilomatrix/Trolley-List/internal/trolley"
	"github.com/Agilomatrix/Trolley-List/internal/types"
	"github.com/Agilomatrix/Trolley-List/internal/xlsxreader"
	"github.com/Agilomatrix/Trolley-List/pkg/utils"
)

// =============================================================================
// REQUEST / RESULT STRUCTURES
// =============================================================================

// Request describes one generation run.
type Request struct {
	// Table is the parsed manifest. Callers that start from a file use
	// GenerateFile instead of filling this directly.
	Table *types.Table

	// LogoBytes is the optional top-right logo image (PNG or JPEG).
	// Empty means the slot is omitted.
	LogoBytes []byte

	// LogoWidthCM and LogoHeightCM are the caller-specified logo box in
	// centimeters. Zero values take the layout defaults; out-of-range
	// values are clamped.
	LogoWidthCM  float64
	LogoHeightCM float64
}

// Result is the outcome of a successful generation.
type Result struct {
	// PDF is the finalized document byte stream.
	PDF []byte

	// FileName is the suggested download/output file name, carrying the
	// generation timestamp.
	FileName string

	// Stats describes the processed manifest.
	Stats Stats
}

// Stats contains statistics about one generation run.
type Stats struct {
	// Rows is the number of manifest rows processed.
	Rows int

	// Groups is the number of station/trolley/model groups, which equals
	// the number of pages in the document.
	Groups int

	// TrolleySource names the id derivation branch that was used.
	TrolleySource string

	// Duration is the time taken for the whole pipeline.
	Duration time.Duration
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator runs the pipeline. Construct once, then call Generate per
// manifest; the generator itself is read-only after construction.
type Generator struct {
	cfg   *config.Config
	theme layout.Theme
	log   *slog.Logger
}

// New creates a Generator from the application configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	theme, err := layout.FromBranding(cfg.Branding)
	if err != nil {
		return nil, fmt.Errorf("failed to build layout theme: %w", err)
	}

	return &Generator{cfg: cfg, theme: theme, log: logger}, nil
}

// GenerateFile reads a manifest workbook from disk and runs the pipeline.
// sheetName overrides the configured sheet selection when non-empty.
func (g *Generator) GenerateFile(path, sheetName string, req Request) (*Result, error) {
	if sheetName == "" {
		sheetName = g.cfg.SheetName
	}

	table, err := xlsxreader.Read(path, sheetName)
	if err != nil {
		return nil, err
	}

	req.Table = table
	return g.Generate(req)
}

// Generate runs the pipeline on an already-parsed manifest table.
func (g *Generator) Generate(req Request) (*Result, error) {
	start := time.Now()

	if req.Table == nil {
		return nil, fmt.Errorf("no manifest table provided")
	}

	// Schema validation happens before any per-group work so a rejected
	// manifest never produces a partial document.
	if err := manifest.ValidateSchema(req.Table); err != nil {
		return nil, err
	}

	// The pipeline works on its own copy; the caller's table is never
	// mutated.
	table := req.Table.Clone()
	manifest.Normalize(table)

	resolver := trolley.NewResolver(g.theme.Separator)
	source := resolver.Attach(table)
	g.log.Debug("resolved trolley ids", "source", source.String(), "rows", len(table.Rows))

	groups := trolley.Partition(table)
	g.log.Debug("partitioned manifest", "groups", len(groups))

	composer := layout.NewComposer(g.theme, g.topLogo(req), start, g.log)

	pages := make([]core.Page, 0, len(groups))
	for _, group := range groups {
		pages = append(pages, composer.ComposePage(group))
	}

	pdf, err := pdfwriter.New().Assemble(pages)
	if err != nil {
		return nil, err
	}

	result := &Result{
		PDF:      pdf,
		FileName: utils.OutputFileName(start),
		Stats: Stats{
			Rows:          len(table.Rows),
			Groups:        len(groups),
			TrolleySource: source.String(),
			Duration:      time.Since(start),
		},
	}

	g.log.Info("generated trolley part list",
		"file", result.FileName,
		"rows", result.Stats.Rows,
		"pages", result.Stats.Groups,
		"duration", result.Stats.Duration)

	return result, nil
}

// topLogo validates the caller-supplied logo. A bad image is logged and
// dropped; the page renders without the slot rather than failing the run.
func (g *Generator) topLogo(req Request) *layout.Logo {
	if len(req.LogoBytes) == 0 {
		return nil
	}

	logo, err := layout.NewLogo(req.LogoBytes, req.LogoWidthCM, req.LogoHeightCM)
	if err != nil {
		g.log.Warn("top logo unusable, omitting", "error", err)
		return nil
	}
	return logo
}
