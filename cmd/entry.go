// =============================================================================
// Stock Transfer Tracker - Entry Command
// =============================================================================
//
// This file defines the 'entry' command, the main workflow of the tracker:
// an interactive terminal form for filling in transfer rows and submitting
// them to the log.
//
// STARTUP SEQUENCE:
//   1. Load configuration
//   2. Load reference data (fatal if a file or required column is missing)
//   3. Build the form state with one blank row
//   4. Run the Bubble Tea program
//
// =============================================================================

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/form"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
	"github.com/brianbrainbrian/TransferTracker/internal/tui"
	"github.com/brianbrainbrian/TransferTracker/pkg/logger"
	"github.com/brianbrainbrian/TransferTracker/pkg/utils"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Open the interactive transfer entry form",
	Long: `Open the interactive transfer entry form.

The form shows the draft transfer rows as a grid. A new blank row appears
automatically once the last row has an item selected, carrying its from/to
locations forward. On submit, every row with an item and a positive quantity
is appended to the transfer log; the form then resets to a single blank row.

The last 10 transfers from the log are shown beneath the form.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := utils.EnsureDirectories(cfg.DataDir); err != nil {
			return err
		}

		cat, err := catalog.Load(cfg)
		if err != nil {
			return err
		}
		log.Debug("reference data loaded",
			zap.Int("locations", len(cat.Locations)),
			zap.Int("parts", len(cat.Parts)),
		)

		state := form.New(cat, cfg.DefaultQuantity)
		writer := transferlog.NewWriter(cfg.TransfersPath(), cfg.Location(), logger.Named(log, "transferlog"))

		model := tui.NewModel(state, cat, writer, cfg.TransfersPath(), cfg.TailLength, logger.Named(log, "tui"))

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running entry form: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}
