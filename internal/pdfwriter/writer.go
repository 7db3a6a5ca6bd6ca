// =============================================================================
// Trolley Part List Generator - Document Assembler
// =============================================================================
//
// This module finalizes the composed pages into one PDF byte stream. It
// owns the fixed page geometry (landscape A4, the margins the layout
// package's grid math assumes) and nothing else: page content is produced
// entirely by the composer and sequenced here in exactly the order it was
// produced.
//
// There is no error recovery at this level. If the underlying render fails
// partway through (e.g. a corrupt image resource), the whole build fails
// and no partial document is returned.
//
// =============================================================================

package pdfwriter

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/Agilomatrix/Trolley-List/internal/layout"
)

// Assembler turns an ordered page sequence into a PDF byte stream.
type Assembler struct{}

// New creates a document assembler.
func New() *Assembler {
	return &Assembler{}
}

// Assemble renders the pages, in order, into a single PDF and returns its
// bytes. Each composed page starts on its own physical page; the page
// model supplies the explicit break between groups.
func (a *Assembler) Assemble(pages []core.Page) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(layout.GridWidth).
		WithLeftMargin(layout.SideMarginMM).
		WithRightMargin(layout.SideMarginMM).
		WithTopMargin(layout.TopMarginMM).
		WithBottomMargin(layout.BottomMarginMM).
		Build()

	m := maroto.New(cfg)
	m.AddPages(pages...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	return doc.GetBytes(), nil
}
