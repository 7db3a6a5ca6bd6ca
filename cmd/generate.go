// =============================================================================
// Trolley Part List Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the one-shot CLI entry into the
// pipeline: read one manifest workbook, produce one PDF.
//
// COMMAND USAGE:
//   trolleylist generate --input manifest.xlsx [flags]
//
// FLAGS:
//   --input       : Path to the manifest workbook (required)
//   --output      : Output directory (overrides configuration)
//   --sheet       : Worksheet name, first sheet if omitted
//   --logo        : Optional top-right logo image (PNG/JPEG)
//   --logo-width  : Logo box width in centimeters
//   --logo-height : Logo box height in centimeters
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Agilomatrix/Trolley-List/internal/config"
	"github.com/Agilomatrix/Trolley-List/internal/generator"
	"github.com/Agilomatrix/Trolley-List/internal/logging"
	"github.com/Agilomatrix/Trolley-List/pkg/utils"
)

var (
	// inputPath is the manifest workbook to process.
	inputPath string

	// outputDir overrides the configured output directory when set.
	outputDir string

	// sheetName selects the worksheet; empty means the first sheet.
	sheetName string

	// logoPath is the optional top-right logo image.
	logoPath string

	// logoWidthCM and logoHeightCM size the logo box in centimeters.
	logoWidthCM  float64
	logoHeightCM float64
)

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a trolley part list PDF from a manifest workbook",
	Long: `The generate command reads the production Excel manifest, groups parts by
station, trolley and model, and writes a paginated PDF into the output
directory — one page per grouping.

The manifest must carry at least the STATION NO, BUS MODEL, PARTNO,
PART DESCRIPTION and LOCATION columns; a rejected manifest reports the
exact missing column names and produces no document.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&inputPath, "input", "", "Path to the manifest workbook (.xlsx)")
	generateCmd.Flags().StringVar(&outputDir, "output", "", "Output directory (overrides configuration)")
	generateCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	generateCmd.Flags().StringVar(&logoPath, "logo", "", "Optional top-right logo image (PNG/JPEG)")
	generateCmd.Flags().Float64Var(&logoWidthCM, "logo-width", 0, "Logo width in centimeters (0.5-10)")
	generateCmd.Flags().Float64Var(&logoHeightCM, "logo-height", 0, "Logo height in centimeters (0.5-5)")

	generateCmd.MarkFlagRequired("input")
}

// runGenerate executes one generation end to end.
func runGenerate() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	logger := logging.Init(cfg.Logging, verbose)

	gen, err := generator.New(cfg, logger)
	if err != nil {
		return err
	}

	req := generator.Request{
		LogoWidthCM:  logoWidthCM,
		LogoHeightCM: logoHeightCM,
	}

	// A missing logo file is a hard flag error; a present-but-broken image
	// degrades inside the pipeline instead.
	if logoPath != "" {
		req.LogoBytes, err = os.ReadFile(logoPath)
		if err != nil {
			return fmt.Errorf("failed to read logo: %w", err)
		}
	}

	result, err := gen.GenerateFile(inputPath, sheetName, req)
	if err != nil {
		return err
	}

	outPath, err := utils.WriteOutput(cfg.OutputDir, result.FileName, result.PDF)
	if err != nil {
		return err
	}

	if cfg.ArchiveDir != "" {
		if err := utils.Archive(outPath, cfg.ArchiveDir); err != nil {
			logger.Warn("failed to archive output", "error", err)
		}
	}

	fmt.Println("=== Trolley Part List Generator ===")
	fmt.Printf("Manifest:        %s\n", inputPath)
	fmt.Printf("Rows processed:  %d\n", result.Stats.Rows)
	fmt.Printf("Pages:           %d\n", result.Stats.Groups)
	fmt.Printf("Trolley ids:     %s\n", result.Stats.TrolleySource)
	fmt.Printf("Output:          %s\n", outPath)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}
