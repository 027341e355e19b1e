// =============================================================================
// Stock Transfer Tracker - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the shared
// bootstrap used by every subcommand: configuration loading and logger setup.
//
// COBRA CLI STRUCTURE:
//   rootCmd (transfertracker)
//   ├── entryCmd    (transfertracker entry)
//   ├── submitCmd   (transfertracker submit)
//   ├── logCmd      (transfertracker log)
//   ├── validateCmd (transfertracker validate)
//   └── versionCmd  (transfertracker version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brianbrainbrian/TransferTracker/internal/config"
	"github.com/brianbrainbrian/TransferTracker/pkg/logger"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "transfertracker",
	Short: "Stock Transfer Tracker - Record stock transfers between storage locations",
	Long: `Stock Transfer Tracker is a single-user data-entry tool for recording stock
transfers between named storage locations.

Reference data (the location list and the part catalogue) is read from
spreadsheet files at startup, and every submitted transfer is appended to an
append-only transfer log workbook.

Example Usage:
  transfertracker entry                  # Open the interactive entry form
  transfertracker log --limit 20         # Show the 20 most recent transfers
  transfertracker submit --file d.yaml   # Submit a prepared draft file
  transfertracker validate               # Check config and reference files`,

	Run: func(cmd *cobra.Command, args []string) {
		// Without a subcommand, just print the help message.
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
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
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

// =============================================================================
// SHARED BOOTSTRAP
// =============================================================================

// bootstrap loads the configuration and builds the operational logger. The
// --verbose flag overrides the configured log level.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	log, err := logger.New(level)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
