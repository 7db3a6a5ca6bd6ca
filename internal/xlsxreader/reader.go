// =============================================================================
// Trolley Part List Generator - Manifest Reader
// =============================================================================
//
// This module reads the production parts manifest (an Excel export) into a
// table of named columns. It is the only place that touches the workbook
// format; everything downstream works on types.Table.
//
// READING PROCESS:
//   1. Open the workbook (file path in CLI mode, byte stream in serve mode)
//   2. Select the worksheet (first sheet unless a name is configured)
//   3. Take row 1 as the header row
//   4. Convert every following non-empty row to a map of header -> value
//
// Cell values arrive from excelize as display strings, which means numeric
// cells formatted by Excel can surface as "5" or "5.0" depending on the
// export. The manifest package's numeric cleaning deals with that.
//
// Whitespace trimming of headers and cells happens HERE, as part of ingest
// normalization: every value downstream (grouping keys, trolley fragments,
// rendered cells) is already trimmed, and no later stage trims again.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Agilomatrix/Trolley-List/internal/types"
)

// Read opens a workbook file and parses one worksheet into a table.
// sheetName selects the worksheet; empty means the first sheet.
func Read(path string, sheetName string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest file: %w", err)
	}
	defer f.Close()

	return parse(f, path, sheetName)
}

// ReadFrom parses a workbook from a reader, e.g. an uploaded file in serve
// mode. name is used only for error reporting and the table's SourceFile.
func ReadFrom(r io.Reader, name string, sheetName string) (*types.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest stream: %w", err)
	}
	defer f.Close()

	return parse(f, name, sheetName)
}

// parse extracts headers and data rows from one worksheet. Headers and
// cell values are whitespace-trimmed on the way in; this is the single
// normalization point for surrounding whitespace.
func parse(f *excelize.File, source, sheetName string) (*types.Table, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("manifest workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(rows[0])

	table := &types.Table{
		Headers:    headers,
		Rows:       make([]types.PartRow, 0, len(rows)-1),
		SourceFile: source,
		SheetName:  sheetName,
	}

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(types.PartRow, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				rowMap[header] = strings.TrimSpace(row[colIndex])
			} else {
				// excelize drops trailing empty cells from GetRows.
				rowMap[header] = ""
			}
		}
		table.Rows = append(table.Rows, rowMap)
	}

	return table, nil
}

// cleanHeaders trims header values and names anonymous columns after their
// position so no row map ends up keyed by "".
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
