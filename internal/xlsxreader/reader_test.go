package xlsxreader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a workbook with the given sheet name and rows and
// returns its raw bytes.
func buildWorkbook(t *testing.T, sheetName string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadFromParsesHeadersAndRows(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"STATION NO", "PARTNO", "LOCATION"},
		{"10", "P-1", "A1"},
		{"20", "P-2", "B2"},
	})

	table, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"STATION NO", "PARTNO", "LOCATION"}, table.Headers)
	assert.Equal(t, "upload.xlsx", table.SourceFile)
	assert.Equal(t, "Manifest", table.SheetName)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "P-2", table.Rows[1].Get("PARTNO"))
}

func TestReadFromNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Parts")
	require.NoError(t, err)
	headers := []interface{}{"PARTNO"}
	require.NoError(t, f.SetSheetRow("Parts", "A1", &headers))
	row := []interface{}{"P-9"}
	require.NoError(t, f.SetSheetRow("Parts", "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ReadFrom(bytes.NewReader(buf.Bytes()), "upload.xlsx", "Parts")

	require.NoError(t, err)
	assert.Equal(t, "Parts", table.SheetName)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "P-9", table.Rows[0].Get("PARTNO"))
}

func TestReadFromMissingSheet(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{{"PARTNO"}})

	_, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "NoSuchSheet")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchSheet")
}

func TestReadFromSkipsEmptyRows(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"PARTNO", "LOCATION"},
		{"P-1", "A1"},
		{"", ""},
		{"P-2", "B2"},
	})

	table, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "")

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "P-1", table.Rows[0].Get("PARTNO"))
	assert.Equal(t, "P-2", table.Rows[1].Get("PARTNO"))
}

func TestReadFromShortRowsFilledWithEmpty(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"PARTNO", "LOCATION"},
		{"P-1"},
	})

	table, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "")

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "P-1", table.Rows[0].Get("PARTNO"))
	assert.Equal(t, "", table.Rows[0].Get("LOCATION"))
}

func TestReadFromAnonymousHeaders(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"PARTNO", "", "LOCATION"},
		{"P-1", "x", "A1"},
	})

	table, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"PARTNO", "Column_2", "LOCATION"}, table.Headers)
	assert.Equal(t, "x", table.Rows[0].Get("Column_2"))
}

func TestReadFromTrimsCellWhitespace(t *testing.T) {
	// Surrounding whitespace is normalized at ingest, for headers and
	// values alike, so grouping keys never differ by padding alone.
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"  PARTNO  ", "LOCATION"},
		{"  P-1 ", " A1"},
	})

	table, err := ReadFrom(bytes.NewReader(data), "upload.xlsx", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"PARTNO", "LOCATION"}, table.Headers)
	assert.Equal(t, "P-1", table.Rows[0].Get("PARTNO"))
	assert.Equal(t, "A1", table.Rows[0].Get("LOCATION"))
}

func TestReadFromNotAWorkbook(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("not a workbook")), "upload.bin", "")
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	data := buildWorkbook(t, "Manifest", [][]interface{}{
		{"PARTNO"},
		{"P-1"},
	})

	path := filepath.Join(t.TempDir(), "manifest.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	table, err := Read(path, "")

	require.NoError(t, err)
	assert.Equal(t, path, table.SourceFile)
	require.Len(t, table.Rows, 1)
}
