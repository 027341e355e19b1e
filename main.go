// =============================================================================
// Stock Transfer Tracker - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Stock Transfer Tracker CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   transfertracker entry      - Open the interactive transfer entry form
//   transfertracker submit     - Submit a draft file without the form
//   transfertracker log        - Show the most recent transfers
//   transfertracker validate   - Check configuration and reference data
//   transfertracker version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core business logic (not for external import)
//   - pkg/       : Shared utilities (logging, file helpers)
//   - data/      : Reference workbooks and the transfer log
//
// =============================================================================

package main

import (
	"github.com/brianbrainbrian/TransferTracker/cmd"
)

func main() {
	cmd.Execute()
}
