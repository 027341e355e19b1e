// =============================================================================
// Stock Transfer Tracker - Draft Row Validation
// =============================================================================
//
// Validation collects every issue across the draft list instead of stopping
// at the first, so a long entry session gets one complete report. Issues are
// advisory for the interactive form (the submit filter drops invalid rows
// silently) and authoritative for batch submits, which refuse to run with a
// dirty draft file.
//
// =============================================================================

package form

import (
	"fmt"
	"strings"

	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

// Issue is a single validation finding against one draft row.
type Issue struct {
	// Row is the zero-based index of the offending row.
	Row int

	// Field names the offending field: "part", "quantity", "from", "to".
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

// Error implements the error interface.
func (i *Issue) Error() string {
	return fmt.Sprintf("row %d, %s: %s", i.Row+1, i.Field, i.Message)
}

// Result is the outcome of validating a draft list.
type Result struct {
	// Issues holds every finding, in row order.
	Issues []*Issue

	// RowsChecked is the number of non-blank rows examined.
	RowsChecked int
}

// OK reports whether validation found no issues.
func (r *Result) OK() bool {
	return len(r.Issues) == 0
}

// Summary renders all findings as one newline-separated block.
func (r *Result) Summary() string {
	lines := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		lines = append(lines, issue.Error())
	}
	return strings.Join(lines, "\n")
}

// Validate checks every non-blank draft row against the reference data.
// Blank rows are padding, not input, and are skipped.
func (s *State) Validate() *Result {
	result := &Result{}

	for i, row := range s.rows {
		if row.Blank() {
			continue
		}
		result.RowsChecked++
		result.Issues = append(result.Issues, s.validateRow(i, row)...)
	}

	return result
}

func (s *State) validateRow(i int, row types.DraftRow) []*Issue {
	var issues []*Issue

	if _, ok := s.catalog.PartByLabel(row.PartLabel); !ok {
		issues = append(issues, &Issue{
			Row:     i,
			Field:   "part",
			Message: fmt.Sprintf("unknown part %q", row.PartLabel),
		})
	}
	if row.Quantity <= 0 {
		issues = append(issues, &Issue{
			Row:     i,
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must be positive, got %d", row.Quantity),
		})
	}
	if !s.catalog.HasLocation(row.FromLocation) {
		issues = append(issues, &Issue{
			Row:     i,
			Field:   "from",
			Message: fmt.Sprintf("unknown location %q", row.FromLocation),
		})
	}
	if !s.catalog.HasLocation(row.ToLocation) {
		issues = append(issues, &Issue{
			Row:     i,
			Field:   "to",
			Message: fmt.Sprintf("unknown location %q", row.ToLocation),
		})
	}

	return issues
}
