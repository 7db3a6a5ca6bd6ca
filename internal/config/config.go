// =============================================================================
// Trolley Part List Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. A single YAML file covers:
//   1. Directory settings (output, archive)
//   2. Logging settings
//   3. Branding settings (logos, block colors, layout constants)
//   4. Server settings (serve mode only)
//
// All settings have working defaults; running without a config file is a
// supported mode (the loader falls back to DefaultConfig when the default
// config path does not exist).
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path used when the --config flag is not
// given.
const DefaultConfigFile = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// OutputDir is the directory where generated PDF files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where generated PDFs are copied for
	// long-term storage. Leave empty to disable archival.
	ArchiveDir string `yaml:"archive_dir"`

	// SheetName selects the worksheet to read from the manifest workbook.
	// Empty means the first sheet.
	SheetName string `yaml:"sheet_name"`

	// Logging controls the slog setup.
	Logging LoggingConfig `yaml:"logging"`

	// Branding holds the fixed layout and branding constants.
	Branding BrandingConfig `yaml:"branding"`

	// Server holds the serve-mode settings.
	Server ServerConfig `yaml:"server"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// BrandingConfig holds the branding constants that used to be hard-coded
// in the layout. They are passed into the composer at construction so two
// generations with different branding never interfere.
type BrandingConfig struct {
	// FixedLogoPath is the "Designed By" logo drawn bottom-right on every
	// page. Resolved relative to the working directory. A missing file
	// degrades to a text placeholder, never an error.
	// Default: "agilomatrix_logo.png"
	FixedLogoPath string `yaml:"fixed_logo_path"`

	// InfoBlockColor is the fill color of the station/trolley info block,
	// as a hex string. Default: "#8ea9db"
	InfoBlockColor string `yaml:"info_block_color"`

	// TableHeaderColor is the fill color of the parts table header row,
	// as a hex string. Default: "#f4b084"
	TableHeaderColor string `yaml:"table_header_color"`

	// TrolleySeparator joins the rack prefix to the rack digits when the
	// trolley id is synthesized from rack fragments. The production
	// convention is a bare hyphen: RACK-<1st><2nd>, e.g. "TL-01".
	// Default: "-"
	TrolleySeparator string `yaml:"trolley_separator"`

	// ColumnWidths are the parts-table column width shares. Seven values
	// summing to 100, in table column order (S. No ... LOCATION).
	ColumnWidths []int `yaml:"column_widths"`
}

// ServerConfig holds serve-mode settings.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string `yaml:"addr"`

	// MaxUploadMB caps the multipart request body size. Default: 32
	MaxUploadMB int64 `yaml:"max_upload_mb"`
}

// =============================================================================
// LOADING
// =============================================================================

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file, applies defaults and
// validates the result. When configPath is the default path and the file
// does not exist, the built-in defaults are returned instead of an error;
// an explicitly named file must exist.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && configPath == DefaultConfigFile {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Branding.FixedLogoPath == "" {
		cfg.Branding.FixedLogoPath = "agilomatrix_logo.png"
	}
	if cfg.Branding.InfoBlockColor == "" {
		cfg.Branding.InfoBlockColor = "#8ea9db"
	}
	if cfg.Branding.TableHeaderColor == "" {
		cfg.Branding.TableHeaderColor = "#f4b084"
	}
	if cfg.Branding.TrolleySeparator == "" {
		cfg.Branding.TrolleySeparator = "-"
	}
	if len(cfg.Branding.ColumnWidths) == 0 {
		// Matches the production sheet proportions: a narrow serial
		// column, a wide description column.
		cfg.Branding.ColumnWidths = []int{5, 15, 35, 8, 8, 10, 19}
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 32
	}
}

// validate checks the configuration and creates the output directories.
func validate(cfg *Config) error {
	if len(cfg.Branding.ColumnWidths) != 7 {
		return fmt.Errorf("branding.column_widths must have 7 entries, got %d", len(cfg.Branding.ColumnWidths))
	}
	total := 0
	for _, w := range cfg.Branding.ColumnWidths {
		if w <= 0 {
			return fmt.Errorf("branding.column_widths entries must be positive")
		}
		total += w
	}
	if total != 100 {
		return fmt.Errorf("branding.column_widths must sum to 100, got %d", total)
	}

	dirs := []string{cfg.OutputDir}
	if cfg.ArchiveDir != "" {
		dirs = append(dirs, cfg.ArchiveDir)
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
