// =============================================================================
// Trolley Part List Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Trolley Part List Generator CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   trolleylist generate    - Generate a PDF from a manifest workbook
//   trolleylist serve       - Host the browser upload surface
//   trolleylist version     - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/Agilomatrix/Trolley-List/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
