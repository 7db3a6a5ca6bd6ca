// =============================================================================
// Trolley Part List Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (generate, serve, version) are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (trolleylist)
//   ├── generateCmd (trolleylist generate)
//   ├── serveCmd    (trolleylist serve)
//   └── versionCmd  (trolleylist version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Agilomatrix/Trolley-List/internal/config"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trolleylist",
	Short: "Trolley Part List Generator - Turn a parts manifest into printable trolley lists",
	Long: `Trolley Part List Generator converts the production team's Excel parts
manifest into a paginated, branded PDF: one page per station/trolley/model
grouping, each with the station info block, a numbered parts table and a
signature footer.

Example Usage:
  trolleylist generate --input manifest.xlsx          # One-shot generation
  trolleylist generate --input manifest.xlsx --logo company.png --logo-width 4
  trolleylist serve                                   # Browser upload surface`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
