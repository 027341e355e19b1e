// =============================================================================
// Stock Transfer Tracker - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and both reference workbooks without writing anything. It exists so a
// misnamed column or a moved file is caught before an entry session starts.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and reference data without writing anything",
	Long: `Check that the configuration parses, the timezone resolves, both reference
files exist with their required columns, and the transfer log (if present)
is readable. Nothing is written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		fmt.Println("=== Stock Transfer Tracker - Validate ===")
		fmt.Printf("Config file:     %s\n", cfgFile)
		fmt.Printf("Data directory:  %s\n", cfg.DataDir)
		fmt.Printf("Timezone:        %s\n", cfg.Timezone)

		cat, err := catalog.Load(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Locations:       %d distinct (from %s)\n", len(cat.Locations), cfg.LocationsPath())
		fmt.Printf("Parts:           %d (from %s)\n", len(cat.Parts), cfg.CataloguePath())

		count, err := transferlog.Count(cfg.TransfersPath())
		if err != nil {
			return err
		}
		fmt.Printf("Transfer log:    %d record(s) in %s\n", count, cfg.TransfersPath())

		fmt.Println("\nAll checks passed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
