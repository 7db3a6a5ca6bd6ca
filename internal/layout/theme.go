// =============================================================================
// Trolley Part List Generator - Layout Theme
// =============================================================================
//
// The theme gathers every layout constant the page composer needs: block
// fill colors, parts-table column widths, the trolley separator convention
// and the fixed logo location. Earlier revisions of the layout hard-coded
// these per variant; they are now one configuration object built from the
// branding section so multiple generations with different branding can run
// without interference.
//
// =============================================================================

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Agilomatrix/Trolley-List/internal/config"
)

// GridWidth is the maroto grid size used across all pages. Working on a
// 100-unit grid lets the parts-table column shares be expressed directly
// as percentages.
const GridWidth = 100

// DateFormat renders the creation date as day-month-year, e.g.
// "05-Mar-2026".
const DateFormat = "02-Jan-2006"

// Theme holds the resolved layout constants for one generation.
type Theme struct {
	// InfoBlockFill is the background of the station/trolley info block.
	InfoBlockFill props.Color

	// TableHeaderFill is the background of the parts-table header row.
	// Distinct from the info block fill.
	TableHeaderFill props.Color

	// BorderColor is the cell border color for both blocks.
	BorderColor props.Color

	// ColumnWidths are the parts-table column shares on the 100-unit
	// grid, in column order: S. No, PART NO, DESCRIPTION, Qty / Veh,
	// MAX SIZE, QTY / TROLLEY, LOCATION.
	ColumnWidths [7]int

	// Separator is the trolley-id separator convention passed to the
	// resolver.
	Separator string

	// FixedLogoPath locates the bottom-right "Designed By" logo.
	FixedLogoPath string
}

// DefaultTheme returns the production layout constants. The built-in
// branding defaults must always resolve; a failure here means the defaults
// themselves are broken, which is a programming error.
func DefaultTheme() Theme {
	theme, err := FromBranding(config.DefaultConfig().Branding)
	if err != nil {
		panic(fmt.Sprintf("default branding does not resolve: %v", err))
	}
	return theme
}

// FromBranding resolves a theme from the branding configuration.
func FromBranding(b config.BrandingConfig) (Theme, error) {
	infoFill, err := ParseHexColor(b.InfoBlockColor)
	if err != nil {
		return Theme{}, fmt.Errorf("invalid info_block_color: %w", err)
	}

	headerFill, err := ParseHexColor(b.TableHeaderColor)
	if err != nil {
		return Theme{}, fmt.Errorf("invalid table_header_color: %w", err)
	}

	theme := Theme{
		InfoBlockFill:   infoFill,
		TableHeaderFill: headerFill,
		BorderColor:     props.Color{Red: 0, Green: 0, Blue: 0},
		Separator:       b.TrolleySeparator,
		FixedLogoPath:   b.FixedLogoPath,
	}

	if len(b.ColumnWidths) != len(theme.ColumnWidths) {
		return Theme{}, fmt.Errorf("expected %d column widths, got %d", len(theme.ColumnWidths), len(b.ColumnWidths))
	}
	copy(theme.ColumnWidths[:], b.ColumnWidths)

	return theme, nil
}

// ParseHexColor parses a "#rrggbb" (or "rrggbb") hex string.
func ParseHexColor(s string) (props.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return props.Color{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return props.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return props.Color{
		Red:   int(v >> 16 & 0xff),
		Green: int(v >> 8 & 0xff),
		Blue:  int(v & 0xff),
	}, nil
}
