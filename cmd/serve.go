// =============================================================================
// Trolley Part List Generator - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which hosts the browser upload
// surface: a minimal form at /, the generation endpoint at /api/generate.
//
// COMMAND USAGE:
//   trolleylist serve [--addr :8080]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Agilomatrix/Trolley-List/internal/config"
	"github.com/Agilomatrix/Trolley-List/internal/generator"
	"github.com/Agilomatrix/Trolley-List/internal/logging"
	"github.com/Agilomatrix/Trolley-List/internal/server"
)

// addr overrides the configured listen address when set.
var addr string

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the browser upload surface",
	Long: `The serve command starts an HTTP server with an upload form. Each upload
runs the generation pipeline once and streams the PDF back as a download.
Nothing is persisted between requests.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides configuration)")
}

func runServe() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := logging.Init(cfg.Logging, verbose)

	gen, err := generator.New(cfg, logger)
	if err != nil {
		return err
	}

	return server.New(cfg, gen, logger).ListenAndServe()
}
