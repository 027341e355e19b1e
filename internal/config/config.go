// =============================================================================
// Stock Transfer Tracker - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Configuration is a single YAML file; every setting has a
// default matching the legacy workbook layout, so an empty file (or a missing
// optional setting) still yields a working setup.
//
// The configuration system is designed to be:
//   - Minimal: one file, flat-ish structure
//   - Defaulted: unset values fall back to sane defaults
//   - Validated: bad values are rejected on load, not at first use
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// DataDir is the directory holding all data files. Relative file paths
	// below are resolved against it.
	// Default: "./data"
	DataDir string `yaml:"data_dir"`

	// LocationsFile is the stock-on-hand workbook the location list is read
	// from. Either .xlsx or .csv.
	// Default: "book1.xlsx"
	LocationsFile string `yaml:"locations_file"`

	// CatalogueFile is the part catalogue workbook. Either .xlsx or .csv.
	// Default: "CATALOGUE.xlsx"
	CatalogueFile string `yaml:"catalogue_file"`

	// TransfersFile is the append-only transfer log workbook. Created on the
	// first submit if it does not exist yet.
	// Default: "stock_transfers.xlsx"
	TransfersFile string `yaml:"transfers_file"`

	// =========================================================================
	// REFERENCE DATA COLUMNS
	// =========================================================================

	// LocationColumn is the header of the location-description column in the
	// locations file.
	// Default: "Bin Location Description"
	LocationColumn string `yaml:"location_column"`

	// ItemCodeColumn is the header of the item-code column in the catalogue.
	// Default: "Item Code"
	ItemCodeColumn string `yaml:"item_code_column"`

	// ItemNameColumn is the header of the item-name column in the catalogue.
	// Default: "ItemName"
	ItemNameColumn string `yaml:"item_name_column"`

	// CSVDelimiter is the field delimiter used when a reference file is a
	// .csv rather than a workbook. Single character.
	// Default: ","
	CSVDelimiter string `yaml:"csv_delimiter"`

	// =========================================================================
	// ENTRY SETTINGS
	// =========================================================================

	// DefaultQuantity is the quantity a freshly added draft row starts with.
	// Must be positive; rows still have to hold a positive quantity at
	// submit time regardless of this value.
	// Default: 1
	DefaultQuantity int `yaml:"default_quantity"`

	// Timezone is the fixed IANA zone transfer timestamps are recorded in.
	// The process-local zone is never used, so logs stay consistent when the
	// tool runs on machines set to different zones.
	// Default: "Australia/Sydney"
	Timezone string `yaml:"timezone"`

	// TailLength is how many recent transfer records are shown after a
	// submit or on load.
	// Default: 10
	TailLength int `yaml:"tail_length"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of operational logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// location is the resolved Timezone, cached by Validate.
	location *time.Location
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// LocationsPath returns the locations file path resolved against DataDir.
func (c *Config) LocationsPath() string { return c.resolve(c.LocationsFile) }

// CataloguePath returns the catalogue file path resolved against DataDir.
func (c *Config) CataloguePath() string { return c.resolve(c.CatalogueFile) }

// TransfersPath returns the transfer log path resolved against DataDir.
func (c *Config) TransfersPath() string { return c.resolve(c.TransfersFile) }

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// Location returns the resolved fixed timezone. Only valid after Load (or
// Validate) has succeeded.
func (c *Config) Location() *time.Location {
	return c.location
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults and
// validates the result. A missing file is not an error: the defaults describe
// the legacy data/ layout, so first runs work without any configuration.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.LocationsFile == "" {
		cfg.LocationsFile = "book1.xlsx"
	}
	if cfg.CatalogueFile == "" {
		cfg.CatalogueFile = "CATALOGUE.xlsx"
	}
	if cfg.TransfersFile == "" {
		cfg.TransfersFile = "stock_transfers.xlsx"
	}
	if cfg.LocationColumn == "" {
		cfg.LocationColumn = "Bin Location Description"
	}
	if cfg.ItemCodeColumn == "" {
		cfg.ItemCodeColumn = "Item Code"
	}
	if cfg.ItemNameColumn == "" {
		cfg.ItemNameColumn = "ItemName"
	}
	if cfg.CSVDelimiter == "" {
		cfg.CSVDelimiter = ","
	}
	if cfg.DefaultQuantity == 0 {
		cfg.DefaultQuantity = 1
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Australia/Sydney"
	}
	if cfg.TailLength == 0 {
		cfg.TailLength = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks the configuration for values that would only fail later,
// at submit time. It also resolves and caches the timezone; an unresolvable
// zone is fatal here, for the same fail-fast reason a missing reference
// column is.
func (c *Config) Validate() error {
	if c.DefaultQuantity < 0 {
		return fmt.Errorf("default_quantity must be positive, got %d", c.DefaultQuantity)
	}
	if c.TailLength < 0 {
		return fmt.Errorf("tail_length must be positive, got %d", c.TailLength)
	}
	if len([]rune(c.CSVDelimiter)) != 1 {
		return fmt.Errorf("csv_delimiter must be a single character, got %q", c.CSVDelimiter)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug/info/warn/error, got %q", c.LogLevel)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}
