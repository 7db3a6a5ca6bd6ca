// =============================================================================
// Trolley Part List Generator - Page Composer
// =============================================================================
//
// The composer renders one group of manifest rows into one document page:
//
//   +----------------------------------------------------------------+
//   | Document Ref No.:                          [top-right logo]    |
//   | +------------------------------+------------------------------+|
//   | | STATION NAME: UNDERBODY      | STATION NO: 10               ||
//   | | MODEL: 9M                    | TROLLEY NO: TL-01            ||
//   | +------------------------------+------------------------------+|
//   | | S. No | PART NO | DESCRIPTION | ... | LOCATION              ||
//   | |   1   |  ...    |   ...       | ... |  ...                  ||
//   | +--------------------------------------------------------------+|
//   | Creation Date: 05-Mar-2026                                     |
//   | Verified By:                                                   |
//   | Name:                         Designed By:  [fixed logo]       |
//   | Signature:                                                     |
//   +----------------------------------------------------------------+
//
// Every group becomes its own maroto page, so page breaks between groups
// are explicit in the page model rather than inferred from overflow. The
// serial number column restarts at 1 for every group and never carries
// over.
//
// Geometry is fixed: landscape A4 with half-inch side margins. Both logo
// slots degrade (omission / text placeholder) when their image is missing
// or undecodable; degradation is logged, never raised.
//
// =============================================================================

package layout

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Agilomatrix/Trolley-List/internal/manifest"
	"github.com/Agilomatrix/Trolley-List/internal/types"
)

// =============================================================================
// PAGE GEOMETRY
// =============================================================================
// Landscape A4. These constants are shared with the document assembler so
// the composer's grid-unit math matches the real printable width.

const (
	// PageWidthMM is the landscape A4 page width.
	PageWidthMM = 297.0

	// SideMarginMM is the left and right margin (half an inch).
	SideMarginMM = 12.7

	// TopMarginMM and BottomMarginMM bound the header and footer blocks,
	// which are composed as page content rows.
	TopMarginMM    = 10.0
	BottomMarginMM = 10.0

	// usableWidthMM is the printable width the 100-unit grid spans.
	usableWidthMM = PageWidthMM - 2*SideMarginMM
)

// Parts-table header labels, in fixed column order.
var tableHeaders = [7]string{
	"S. No", "PART NO", "DESCRIPTION", "Qty / Veh", "MAX SIZE", "QTY / TROLLEY", "LOCATION",
}

// =============================================================================
// COMPOSER
// =============================================================================

// Composer builds document pages for groups. It is constructed once per
// generation; the fixed logo stream is read at construction and the
// composer holds no other resources.
type Composer struct {
	theme     Theme
	topLogo   *Logo
	fixedLogo *Logo
	now       time.Time
	log       *slog.Logger
}

// NewComposer creates a page composer.
//
// topLogo is the caller-supplied top-right logo; nil omits the slot. The
// fixed bottom-right logo is loaded from the theme's path here; if it is
// missing or undecodable the composer logs a warning and renders the text
// placeholder instead.
func NewComposer(theme Theme, topLogo *Logo, now time.Time, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Composer{
		theme:   theme,
		topLogo: topLogo,
		now:     now,
		log:     logger,
	}

	if theme.FixedLogoPath != "" {
		fixed, err := LoadFixedLogo(theme.FixedLogoPath)
		if err != nil {
			logger.Warn("fixed logo unavailable, using placeholder",
				"path", theme.FixedLogoPath, "error", err)
		} else {
			c.fixedLogo = fixed
		}
	}

	return c
}

// ComposePage renders one group as one page. The element order is header
// block, info block, parts table, footer block.
func (c *Composer) ComposePage(g types.Group) core.Page {
	rows := []core.Row{c.headerRow()}
	rows = append(rows, c.infoRows(g.Key)...)
	rows = append(rows, row.New(3))
	rows = append(rows, c.tableRows(g.Rows)...)
	rows = append(rows, row.New(4))
	rows = append(rows, c.footerRow())

	return page.New().Add(rows...)
}

// =============================================================================
// HEADER BLOCK
// =============================================================================

// headerRow renders the "Document Ref No.:" label (the value is a manual
// fill-in field, intentionally blank) and the optional top-right logo.
func (c *Composer) headerRow() core.Row {
	label := text.NewCol(30, "Document Ref No.:", props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	})

	if c.topLogo == nil {
		return row.New(8).Add(label, col.New(70))
	}

	logoUnits := gridUnits(c.topLogo.WidthCM)
	height := math.Max(8, c.topLogo.HeightCM*10)

	return row.New(height).Add(
		label,
		col.New(70-logoUnits),
		image.NewFromBytesCol(logoUnits, c.topLogo.Bytes, c.topLogo.Ext, props.Rect{
			Percent: 100,
			Center:  true,
		}),
	)
}

// =============================================================================
// INFO BLOCK
// =============================================================================

// infoRows renders the two-row station/trolley block. Absent key fields
// render as empty values after the label. All text is upper-cased
// regardless of source casing.
func (c *Composer) infoRows(key types.GroupKey) []core.Row {
	cell := &props.Cell{
		BackgroundColor: &c.theme.InfoBlockFill,
		BorderType:      border.Full,
		BorderColor:     &c.theme.BorderColor,
		BorderThickness: 0.3,
	}

	label := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Left,
		Left:  2,
		Top:   1.5,
	}

	pair := func(name, value string) string {
		return strings.ToUpper(fmt.Sprintf("%s: %s", name, value))
	}

	return []core.Row{
		row.New(8).Add(
			text.NewCol(50, pair("STATION NAME", key.StationName), label).WithStyle(cell),
			text.NewCol(50, pair("STATION NO", key.StationNo), label).WithStyle(cell),
		),
		row.New(8).Add(
			text.NewCol(50, pair("MODEL", key.Model), label).WithStyle(cell),
			text.NewCol(50, pair("TROLLEY NO", key.TrolleyID), label).WithStyle(cell),
		),
	}
}

// =============================================================================
// PARTS TABLE
// =============================================================================

// tableRows renders the parts table: one styled header row plus one row
// per part, serial numbered from 1 within the group.
func (c *Composer) tableRows(parts []types.PartRow) []core.Row {
	values := tableValues(parts)

	rows := make([]core.Row, 0, len(values)+1)
	rows = append(rows, c.tableHeaderRow())
	for _, v := range values {
		rows = append(rows, c.tableDataRow(v))
	}

	return rows
}

// tableValues builds the cell-value grid for one group's parts table. The
// serial column always counts from 1; it carries no state between groups.
func tableValues(parts []types.PartRow) [][7]string {
	values := make([][7]string, len(parts))
	for i, part := range parts {
		values[i] = tableRowValues(i+1, part)
	}
	return values
}

func (c *Composer) tableHeaderRow() core.Row {
	cell := &props.Cell{
		BackgroundColor: &c.theme.TableHeaderFill,
		BorderType:      border.Full,
		BorderColor:     &c.theme.BorderColor,
		BorderThickness: 0.3,
	}

	style := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   1.5,
	}

	cols := make([]core.Col, len(tableHeaders))
	for i, h := range tableHeaders {
		cols[i] = text.NewCol(c.theme.ColumnWidths[i], h, style).WithStyle(cell)
	}

	return row.New(7).Add(cols...)
}

// tableRowValues builds one data row's cell values in fixed column order.
// The numeric-looking columns go through the cleaning function, everything
// else renders verbatim. Missing attributes are "" after normalization.
func tableRowValues(serial int, part types.PartRow) [7]string {
	return [7]string{
		strconv.Itoa(serial),
		part.Get(types.ColPartNo),
		part.Get(types.ColPartDescription),
		manifest.CleanNumeric(part.Get(types.ColQtyPerVehicle)),
		manifest.CleanNumeric(part.Get(types.ColMaxSize)),
		manifest.CleanNumeric(part.Get(types.ColQtyPerTrolley)),
		part.Get(types.ColLocation),
	}
}

func (c *Composer) tableDataRow(values [7]string) core.Row {
	cell := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     &c.theme.BorderColor,
		BorderThickness: 0.3,
	}

	centered := props.Text{Size: 9, Align: align.Center, Top: 1.5}
	left := props.Text{Size: 9, Align: align.Left, Left: 1, Top: 1.5}

	styles := [7]props.Text{centered, left, left, centered, centered, centered, left}

	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = text.NewCol(c.theme.ColumnWidths[i], v, styles[i]).WithStyle(cell)
	}

	return row.New(6).Add(cols...)
}

// =============================================================================
// FOOTER BLOCK
// =============================================================================

// footerRow renders the signature footer: creation date and signature
// lines on the left, "Designed By" and the fixed logo (or its placeholder)
// on the right.
func (c *Composer) footerRow() core.Row {
	dateStr := c.now.Format(DateFormat)

	leftBlock := col.New(40).Add(
		text.New("Creation Date: "+dateStr, props.Text{Size: 10, Style: fontstyle.Italic}),
		text.New("Verified By:", props.Text{Size: 10, Style: fontstyle.Bold, Top: 7}),
		text.New("Name:", props.Text{Size: 10, Top: 12}),
		text.New("Signature:", props.Text{Size: 10, Top: 17}),
	)

	designedBy := text.NewCol(12, "Designed By:", props.Text{
		Size:  10,
		Align: align.Right,
		Top:   8,
	})

	var logoCol core.Col
	if c.fixedLogo != nil {
		logoCol = image.NewFromBytesCol(gridUnits(c.fixedLogo.WidthCM), c.fixedLogo.Bytes, c.fixedLogo.Ext, props.Rect{
			Percent: 100,
			Center:  true,
		})
	} else {
		logoCol = text.NewCol(gridUnits(fixedLogoWidthCM), "[Logo Placeholder]", props.Text{
			Size:  8,
			Style: fontstyle.Italic,
			Align: align.Center,
			Top:   9,
		})
	}

	spacer := GridWidth - 40 - 12 - gridUnits(fixedLogoWidthCM)

	return row.New(22).Add(leftBlock, col.New(spacer), designedBy, logoCol)
}

// gridUnits converts a physical width in centimeters to 100-unit grid
// columns, rounding up so images never get squeezed below their box.
func gridUnits(widthCM float64) int {
	units := int(math.Ceil(widthCM * 10 / (usableWidthMM / GridWidth)))
	if units < 1 {
		units = 1
	}
	if units > GridWidth {
		units = GridWidth
	}
	return units
}
