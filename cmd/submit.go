// =============================================================================
// Stock Transfer Tracker - Submit Command
// =============================================================================
//
// This file defines the 'submit' command, the non-interactive path to the
// transfer log. It reads a prepared draft file (YAML), runs it through the
// same form state and validation as the interactive form, and appends the
// valid rows to the log.
//
// DRAFT FILE FORMAT:
//   rows:
//     - part: "ABC123 - Widget"
//       quantity: 2
//       from: "Bin A1"
//       to: "Bin B2"
//
// Unlike the interactive form, a draft file with validation issues is
// rejected outright; silent dropping of rows is only acceptable when a person
// is watching the form.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/form"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
	"github.com/brianbrainbrian/TransferTracker/pkg/logger"
	"github.com/brianbrainbrian/TransferTracker/pkg/utils"
)

// draftFile is the on-disk shape of a prepared submission.
type draftFile struct {
	Rows []types.DraftRow `yaml:"rows"`
}

// submitFile is the path to the draft file to submit.
var submitFile string

// submitDryRun validates the draft file without writing to the log.
var submitDryRun bool

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a prepared draft file to the transfer log",
	Long: `Submit a prepared draft file to the transfer log without opening the form.

The draft file is validated against the reference data first. Any unknown
part, unknown location, or non-positive quantity rejects the whole file; on
success every row is appended to the log in one batch.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubmit()
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(
		&submitFile,
		"file",
		"",
		"Path to the draft YAML file to submit (required)",
	)
	submitCmd.MarkFlagRequired("file")

	submitCmd.Flags().BoolVar(
		&submitDryRun,
		"dry-run",
		false,
		"Validate the draft file without writing to the log",
	)
}

func runSubmit() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	// =========================================================================
	// STEP 1: LOAD REFERENCE DATA AND THE DRAFT FILE
	// =========================================================================

	cat, err := catalog.Load(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("failed to read draft file: %w", err)
	}

	var draft draftFile
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("failed to parse draft file %s: %w", submitFile, err)
	}
	if len(draft.Rows) == 0 {
		fmt.Println("Draft file contains no rows; nothing to submit.")
		return nil
	}

	// =========================================================================
	// STEP 2: REPLAY THE DRAFT THROUGH THE FORM STATE
	// =========================================================================
	// Driving the same state object the form uses keeps one set of editing
	// and validation rules.

	state := form.New(cat, cfg.DefaultQuantity)
	for i, row := range draft.Rows {
		// Auto-grow only fires on rows with a part selected; grow explicitly
		// so a draft with an empty part still lands in the validation report.
		for state.Len() <= i {
			state.AddRow()
		}
		if err := state.SetPart(i, row.PartLabel); err != nil {
			return fmt.Errorf("draft row %d: %w", i+1, err)
		}
		if err := state.SetQuantity(i, row.Quantity); err != nil {
			return fmt.Errorf("draft row %d: %w", i+1, err)
		}
		if err := state.SetFrom(i, row.FromLocation); err != nil {
			return fmt.Errorf("draft row %d: %w", i+1, err)
		}
		if err := state.SetTo(i, row.ToLocation); err != nil {
			return fmt.Errorf("draft row %d: %w", i+1, err)
		}
	}

	if result := state.Validate(); !result.OK() {
		fmt.Fprintln(os.Stderr, "Draft file failed validation:")
		fmt.Fprintln(os.Stderr, result.Summary())
		return fmt.Errorf("%d validation issue(s) in %s", len(result.Issues), submitFile)
	}

	if submitDryRun {
		fmt.Printf("Dry run: %d row(s) in %s are valid; nothing written.\n", len(draft.Rows), submitFile)
		return nil
	}

	// =========================================================================
	// STEP 3: APPEND TO THE TRANSFER LOG
	// =========================================================================

	if err := utils.EnsureDirectories(cfg.DataDir); err != nil {
		return err
	}

	writer := transferlog.NewWriter(cfg.TransfersPath(), cfg.Location(), logger.Named(log, "transferlog"))
	result, err := writer.Submit(state.Rows())
	if errors.Is(err, transferlog.ErrNoValidRows) {
		fmt.Println("Warning: no valid rows to submit; nothing written.")
		return nil
	}
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 4: PRINT SUMMARY
	// =========================================================================

	fmt.Println("=== Submit Complete ===")
	fmt.Printf("Records written: %d\n", result.Written)
	fmt.Printf("Rows skipped:    %d\n", result.Skipped)
	fmt.Printf("Batch ref:       %s\n", result.BatchID)
	fmt.Printf("Transfer log:    %s\n", result.LogPath)

	return printTail(cfg)
}
