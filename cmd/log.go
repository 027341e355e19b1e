// =============================================================================
// Stock Transfer Tracker - Log Command
// =============================================================================
//
// This file defines the 'log' command, a read-only view of the most recent
// transfer records.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brianbrainbrian/TransferTracker/internal/config"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
)

var logHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// logLimit is the number of records to show; 0 falls back to the configured
// tail length.
var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the most recent transfer records",
	Long:  `Show the most recent records from the transfer log, oldest first.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if logLimit > 0 {
			cfg.TailLength = logLimit
		}
		return printTail(cfg)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntVar(
		&logLimit,
		"limit",
		0,
		"Number of records to show (default: configured tail length)",
	)
}

// printTail prints the tail of the transfer log. Shared with the submit
// command, which shows the log after a successful batch.
func printTail(cfg *config.Config) error {
	records, err := transferlog.Tail(cfg.TransfersPath(), cfg.TailLength)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No transfers have been submitted yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(logHeaderStyle.Render(fmt.Sprintf("Last %d transfers", len(records))))
	fmt.Printf("%-10s %-8s %-18s %-30s %8s  %-24s %-24s\n",
		"Date", "Time", "Item No", "Item Description", "Quantity", "From Location", "To Location")
	for _, rec := range records {
		fmt.Printf("%-10s %-8s %-18s %-30s %8d  %-24s %-24s\n",
			rec.Date, rec.Time, rec.ItemNo, rec.ItemDescription,
			rec.Quantity, rec.FromLocation, rec.ToLocation)
	}
	return nil
}
