package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFileName(t *testing.T) {
	ts := time.Date(2026, 3, 5, 14, 10, 3, 0, time.UTC)

	name := OutputFileName(ts)

	assert.Regexp(t, `^Trolley_Part_List_20260305_141003_[0-9a-f]{8}\.pdf$`, name)
}

func TestOutputFileNameUnique(t *testing.T) {
	ts := time.Now()
	assert.NotEqual(t, OutputFileName(ts), OutputFileName(ts))
}

func TestWriteOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	path, err := WriteOutput(dir, "doc.pdf", []byte("%PDF-test"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-test"), data)
}

func TestArchiveCopiesAndKeepsSource(t *testing.T) {
	dir := t.TempDir()
	archiveDir := filepath.Join(dir, "archive")

	path, err := WriteOutput(filepath.Join(dir, "out"), "doc.pdf", []byte("%PDF-test"))
	require.NoError(t, err)

	require.NoError(t, Archive(path, archiveDir))

	assert.FileExists(t, path)
	copied, err := os.ReadFile(filepath.Join(archiveDir, "doc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-test"), copied)
}

func TestArchiveDisabledWhenNoDir(t *testing.T) {
	assert.NoError(t, Archive(filepath.Join(t.TempDir(), "absent.pdf"), ""))
}

func TestArchiveMissingSource(t *testing.T) {
	err := Archive(filepath.Join(t.TempDir(), "absent.pdf"), t.TempDir())
	require.Error(t, err)
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
}
