// =============================================================================
// Trolley Part List Generator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the generator:
//   - Output file naming (generation timestamp + short unique suffix)
//   - Directory management
//   - Writing the finalized PDF
//   - Archival of generated documents
//
// ARCHIVAL STRATEGY:
//   Generated PDFs land in the output directory; when an archive directory
//   is configured, a copy goes there for long-term storage. Failed
//   generations write nothing anywhere.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// outputPrefix is the base name of every generated document.
const outputPrefix = "Trolley_Part_List"

// OutputFileName builds the file name for one generated document. The
// name carries the generation timestamp plus a short unique suffix so
// repeated runs in the same second don't collide:
//
//	Trolley_Part_List_20260305_141003_a1b2c3d4.pdf
func OutputFileName(t time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s.pdf", outputPrefix, t.Format("20060102_150405"), suffix)
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteOutput writes the document bytes into the output directory under
// the given name and returns the full path.
func WriteOutput(outputDir, name string, data []byte) (string, error) {
	if err := EnsureDir(outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	return path, nil
}

// Archive copies a generated file into the archive directory. The source
// stays in place; archival failures are reported but the caller treats
// them as non-fatal.
func Archive(path, archiveDir string) error {
	if archiveDir == "" {
		return nil
	}

	if err := EnsureDir(archiveDir); err != nil {
		return err
	}

	dst := filepath.Join(archiveDir, filepath.Base(path))
	return copyFile(path, dst)
}

// copyFile copies src to dst, overwriting dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy to %s: %w", dst, err)
	}

	return out.Close()
}
