// =============================================================================
// Trolley Part List Generator - Trolley Id Resolver
// =============================================================================
//
// This module derives the composite trolley identifier each row is grouped
// under. The manifest carries the identifier in one of two shapes depending
// on which plant exported it:
//
//   1. Three rack fragment columns (RACK, RACK NO (1st digit),
//      RACK NO (2nd digit)) that concatenate into an id like "TL-01".
//   2. A single pre-existing "Trolley No" column.
//
// When neither shape is present, every row gets the UNKNOWN sentinel so the
// document still generates with a visible marker instead of failing.
//
// The branch is decided ONCE per table from the schema and then applied
// uniformly to all rows. A per-row fallback would let one document mix id
// formats, which is exactly what the up-front decision exists to prevent.
//
// =============================================================================

package trolley

import (
	"github.com/Agilomatrix/Trolley-List/internal/manifest"
	"github.com/Agilomatrix/Trolley-List/internal/types"
)

// Unknown is the sentinel trolley id assigned when the manifest carries
// neither rack fragments nor a trolley-number column.
const Unknown = "UNKNOWN"

// DefaultSeparator joins the rack prefix to the rack digits. The fixed
// production convention is a bare hyphen with the two digit fragments
// concatenated directly: RACK + "-" + 1st + 2nd, e.g. "TL" + "0" + "1"
// -> "TL-01".
const DefaultSeparator = "-"

// Source identifies which derivation branch the resolver picked for a
// table.
type Source int

const (
	// SourceRackFragments: id synthesized from the three rack columns.
	SourceRackFragments Source = iota

	// SourceTrolleyColumn: id copied from the Trolley No column.
	SourceTrolleyColumn

	// SourceUnknown: neither source available, sentinel assigned.
	SourceUnknown
)

// String returns a log-friendly name for the source.
func (s Source) String() string {
	switch s {
	case SourceRackFragments:
		return "rack_fragments"
	case SourceTrolleyColumn:
		return "trolley_column"
	default:
		return "unknown"
	}
}

// Resolver derives trolley ids for one table.
type Resolver struct {
	separator string
}

// NewResolver creates a resolver with the given separator convention.
// An empty separator falls back to DefaultSeparator.
func NewResolver(separator string) *Resolver {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Resolver{separator: separator}
}

// Attach computes the trolley id for every row and stores it in the
// derived TROLLEY_ID column, which is appended to the table schema. It
// returns the derivation branch that was used. Ids are computed exactly
// once; nothing downstream recomputes or mutates them.
func (r *Resolver) Attach(t *types.Table) Source {
	source := r.chooseSource(t)

	for _, row := range t.Rows {
		row[types.ColTrolleyID] = r.resolve(row, source)
	}
	t.AddColumn(types.ColTrolleyID)

	return source
}

// chooseSource picks the derivation branch from the table schema. This is
// a per-table decision, not per-row: there is no partial fallback.
func (r *Resolver) chooseSource(t *types.Table) Source {
	if t.HasColumn(types.ColRack) && t.HasColumn(types.ColRackFirst) && t.HasColumn(types.ColRackSecond) {
		return SourceRackFragments
	}
	if t.HasColumn(types.ColTrolleyNo) {
		return SourceTrolleyColumn
	}
	return SourceUnknown
}

// resolve computes one row's trolley id for the chosen source.
func (r *Resolver) resolve(row types.PartRow, source Source) string {
	switch source {
	case SourceRackFragments:
		return manifest.CleanNumeric(row.Get(types.ColRack)) +
			r.separator +
			manifest.CleanNumeric(row.Get(types.ColRackFirst)) +
			manifest.CleanNumeric(row.Get(types.ColRackSecond))
	case SourceTrolleyColumn:
		return row.Get(types.ColTrolleyNo)
	default:
		return Unknown
	}
}
