// =============================================================================
// Trolley Part List Generator - Manifest Normalization & Schema Checks
// =============================================================================
//
// This module prepares the raw manifest table for the grouping and layout
// stages:
//   - Schema validation: the required columns must exist, and failures are
//     reported with the exact list of missing names before any rendering
//     starts.
//   - Column normalization: optional columns are materialized, every cell
//     gets a defined string value, and no later stage ever deals with a
//     missing marker.
//   - Numeric cleaning: Excel exports frequently coerce integer cells to
//     float-like strings ("5" becomes "5.0"); CleanNumeric strips that
//     artifact for display.
//
// =============================================================================

package manifest

import (
	"fmt"
	"strings"

	"github.com/Agilomatrix/Trolley-List/internal/types"
)

// =============================================================================
// SCHEMA VALIDATION
// =============================================================================

// SchemaError reports required manifest columns that are absent. It is
// raised eagerly, before any per-group work.
type SchemaError struct {
	// Missing lists the absent required column names, in canonical order.
	Missing []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns in manifest: %s", strings.Join(e.Missing, ", "))
}

// ValidateSchema checks that every required column is present in the table
// schema. On failure it returns a *SchemaError enumerating all missing
// names, not just the first.
func ValidateSchema(t *types.Table) error {
	var missing []string
	for _, col := range types.RequiredColumns() {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// =============================================================================
// COLUMN NORMALIZATION
// =============================================================================

// Normalize materializes the optional display columns and fills every
// missing cell with "". The table is mutated in place; the pipeline calls
// this on its own copy so no mutation is visible outside.
func Normalize(t *types.Table) {
	for _, col := range types.OptionalColumns() {
		t.AddColumn(col)
	}

	for _, row := range t.Rows {
		for _, header := range t.Headers {
			if _, ok := row[header]; !ok {
				row[header] = ""
			}
		}
	}
}

// CleanNumeric removes the trailing ".0" that numeric-to-string coercion
// leaves on integer values, so "5.0" renders as "5". Applying it to an
// already-clean value is a no-op, which makes it safe to call at every
// display site.
func CleanNumeric(s string) string {
	return strings.TrimSuffix(s, ".0")
}
