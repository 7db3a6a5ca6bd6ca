// =============================================================================
// Trolley Part List Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - manifest
//   - trolley
//   - layout
//   - generator
//
// =============================================================================

package types

// =============================================================================
// MANIFEST COLUMN NAMES
// =============================================================================
// Column names as they appear in the production Excel export. The exact
// casing and spacing comes from the planning team's spreadsheet and must not
// be "fixed" here; the reader matches headers verbatim.

const (
	// ColStationNo is the assembly station number.
	ColStationNo = "STATION NO"

	// ColBusModel is the bus/vehicle model identifier.
	ColBusModel = "BUS MODEL"

	// ColRack is the rack prefix used when synthesizing a trolley id.
	ColRack = "RACK"

	// ColRackFirst and ColRackSecond are the two rack-number digit columns.
	ColRackFirst  = "RACK NO (1st digit)"
	ColRackSecond = "RACK NO (2nd digit)"

	// ColTrolleyNo is a pre-existing trolley-number column. Some exports
	// carry this instead of the three rack fragment columns.
	ColTrolleyNo = "Trolley No"

	// ColStationName is the human-readable station name (e.g. "UnderBody").
	ColStationName = "STATION NAME"

	// ColPartNo is the part number.
	ColPartNo = "PARTNO"

	// ColPartDescription is the part description.
	ColPartDescription = "PART DESCRIPTION"

	// ColQtyPerVehicle is the quantity of this part used per vehicle.
	ColQtyPerVehicle = "Qty / Veh"

	// ColMaxSize is the maximum part size held on the trolley.
	ColMaxSize = "Max Size"

	// ColQtyPerTrolley is the quantity of this part held per trolley.
	ColQtyPerTrolley = "Qty /Trolley"

	// ColLocation is the part's storage location on the trolley.
	ColLocation = "LOCATION"

	// ColTrolleyID is the derived trolley identifier column. It never
	// appears in the input; the resolver attaches it to the table.
	ColTrolleyID = "TROLLEY_ID"
)

// RequiredColumns returns the columns that must be present in the manifest
// for generation to proceed. Everything else is optional and defaults to
// an empty value per row.
func RequiredColumns() []string {
	return []string{
		ColStationNo,
		ColBusModel,
		ColPartNo,
		ColPartDescription,
		ColLocation,
	}
}

// OptionalColumns returns the columns the normalizer materializes as empty
// when the export does not carry them.
func OptionalColumns() []string {
	return []string{
		ColStationName,
		ColQtyPerVehicle,
		ColMaxSize,
		ColQtyPerTrolley,
	}
}

// KeyColumns returns the canonical grouping key columns in their fixed
// order: station number, trolley id, model, station name. The partitioner
// filters this list to the columns actually present in the table.
func KeyColumns() []string {
	return []string{
		ColStationNo,
		ColTrolleyID,
		ColBusModel,
		ColStationName,
	}
}

// =============================================================================
// TABLE TYPES
// =============================================================================

// PartRow represents one manifest line as a map of column name to value.
// After normalization every known column has a defined string value.
type PartRow map[string]string

// Get returns the row's value for a column, or "" when the column is
// absent. Callers never have to distinguish missing from empty.
func (r PartRow) Get(col string) string {
	return r[col]
}

// Clone returns an independent copy of the row.
func (r PartRow) Clone() PartRow {
	out := make(PartRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table represents the parsed manifest: an ordered header list plus the
// data rows keyed by header.
type Table struct {
	// Headers contains the column headers in sheet order.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []PartRow

	// SourceFile is the path or name of the source workbook, kept for
	// error reporting.
	SourceFile string

	// SheetName is the worksheet the rows were read from.
	SheetName string
}

// HasColumn reports whether the table schema contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema if it is not already present.
// Existing rows are not touched; missing values read as "".
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Headers = append(t.Headers, name)
	}
}

// Clone returns a deep copy of the table. The pipeline normalizes and
// annotates a copy so the caller's table is never mutated.
func (t *Table) Clone() *Table {
	out := &Table{
		Headers:    append([]string(nil), t.Headers...),
		Rows:       make([]PartRow, len(t.Rows)),
		SourceFile: t.SourceFile,
		SheetName:  t.SheetName,
	}
	for i, row := range t.Rows {
		out.Rows[i] = row.Clone()
	}
	return out
}

// =============================================================================
// GROUPING TYPES
// =============================================================================

// GroupKey is the ordered grouping tuple for one document page. Key fields
// whose columns are absent from the manifest hold "".
type GroupKey struct {
	StationNo   string
	TrolleyID   string
	Model       string
	StationName string
}

// Group is an ordered run of rows sharing a GroupKey. Each group renders
// as exactly one page.
type Group struct {
	Key  GroupKey
	Rows []PartRow
}
