// =============================================================================
// Trolley Part List Generator - Group Partitioner
// =============================================================================
//
// This module partitions the normalized manifest into page groups. Rows
// sharing a (station no, trolley id, model, station name) tuple land on the
// same document page.
//
// ORDERING:
//   The table is stable-sorted by the key columns before partitioning, so
//   group iteration order is the lexicographic order of the key tuples and
//   running the pipeline twice on the same input produces pages in the
//   identical order. Rows inside a group keep their post-sort relative
//   order.
//
// =============================================================================

package trolley

import (
	"sort"

	"github.com/Agilomatrix/Trolley-List/internal/types"
)

// Partition groups the table's rows by the canonical key columns and
// returns the groups in sorted key order.
//
// The key-column list is the canonical ordered list filtered to columns
// present in the schema. Comparison is exact string equality, case
// sensitive, with no trimming beyond what normalization already did. If
// none of the key columns are present the whole table forms a single
// group.
//
// Every input row belongs to exactly one group; concatenating the groups'
// rows reproduces the full row set.
func Partition(t *types.Table) []types.Group {
	keyCols := presentKeyColumns(t)

	if len(t.Rows) == 0 {
		return nil
	}

	if len(keyCols) == 0 {
		return []types.Group{{
			Key:  keyFor(t.Rows[0], nil),
			Rows: append([]types.PartRow(nil), t.Rows...),
		}}
	}

	sorted := append([]types.PartRow(nil), t.Rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessByColumns(sorted[i], sorted[j], keyCols)
	})

	var groups []types.Group
	for _, row := range sorted {
		if n := len(groups); n > 0 && equalByColumns(groups[n-1].Rows[0], row, keyCols) {
			groups[n-1].Rows = append(groups[n-1].Rows, row)
			continue
		}
		groups = append(groups, types.Group{
			Key:  keyFor(row, keyCols),
			Rows: []types.PartRow{row},
		})
	}

	return groups
}

// presentKeyColumns filters the canonical key-column list to the columns
// the table actually has, preserving the canonical order.
func presentKeyColumns(t *types.Table) []string {
	var cols []string
	for _, col := range types.KeyColumns() {
		if t.HasColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// lessByColumns compares two rows column by column in key order.
func lessByColumns(a, b types.PartRow, cols []string) bool {
	for _, col := range cols {
		av, bv := a.Get(col), b.Get(col)
		if av != bv {
			return av < bv
		}
	}
	return false
}

// equalByColumns reports whether two rows match on every key column.
func equalByColumns(a, b types.PartRow, cols []string) bool {
	for _, col := range cols {
		if a.Get(col) != b.Get(col) {
			return false
		}
	}
	return true
}

// keyFor builds the positional GroupKey for a row. Key fields whose
// columns are not in the present list render as empty strings on the page
// rather than erroring.
func keyFor(row types.PartRow, presentCols []string) types.GroupKey {
	present := make(map[string]bool, len(presentCols))
	for _, col := range presentCols {
		present[col] = true
	}

	get := func(col string) string {
		if present[col] {
			return row.Get(col)
		}
		return ""
	}

	return types.GroupKey{
		StationNo:   get(types.ColStationNo),
		TrolleyID:   get(types.ColTrolleyID),
		Model:       get(types.ColBusModel),
		StationName: get(types.ColStationName),
	}
}
