// =============================================================================
// Stock Transfer Tracker - Transfer Form State
// =============================================================================
//
// This module owns the in-memory ordered list of draft transfer rows. It is
// deliberately UI-free: the TUI (or a batch submit) holds a *State and routes
// every mutation through it, so the editing rules live in exactly one place.
//
// EDITING RULES:
//   - A new row defaults its from/to locations to the previous row's values,
//     or to the first known location when there is no previous row.
//   - Whenever the last row gains a part selection, a blank row is appended
//     automatically, carrying that row's from/to forward.
//   - Deletion processes indices in descending order so earlier removals do
//     not shift the positions of later ones.
//   - The list is never empty; it is reset to a single blank row after a
//     successful submit.
//
// =============================================================================

package form

import (
	"fmt"
	"sort"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

// =============================================================================
// STATE
// =============================================================================

// State is the mutable draft row list for one editing session.
type State struct {
	rows            []types.DraftRow
	catalog         *catalog.Catalog
	defaultQuantity int
}

// New creates form state holding a single blank row.
func New(cat *catalog.Catalog, defaultQuantity int) *State {
	if defaultQuantity <= 0 {
		defaultQuantity = 1
	}
	s := &State{
		catalog:         cat,
		defaultQuantity: defaultQuantity,
	}
	s.AddRow()
	return s
}

// Len returns the number of draft rows, including the trailing blank row.
func (s *State) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the draft rows in order.
func (s *State) Rows() []types.DraftRow {
	out := make([]types.DraftRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Row returns the draft row at index i.
func (s *State) Row(i int) (types.DraftRow, error) {
	if err := s.check(i); err != nil {
		return types.DraftRow{}, err
	}
	return s.rows[i], nil
}

// =============================================================================
// ROW OPERATIONS
// =============================================================================

// AddRow appends a blank draft row. From/to carry forward from the previous
// row; the first row falls back to the first known location.
func (s *State) AddRow() {
	from := s.catalog.FirstLocation()
	to := from
	if n := len(s.rows); n > 0 {
		from = s.rows[n-1].FromLocation
		to = s.rows[n-1].ToLocation
	}
	s.rows = append(s.rows, types.DraftRow{
		Quantity:     s.defaultQuantity,
		FromLocation: from,
		ToLocation:   to,
	})
}

// DeleteRows removes the rows at the given indices. Indices are processed in
// descending order so a batch delete never removes the wrong row; out-of-range
// indices are ignored. An emptied list immediately regains a blank row.
func (s *State) DeleteRows(indices ...int) {
	ordered := make([]int, len(indices))
	copy(ordered, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	last := -1
	for _, idx := range ordered {
		if idx == last {
			continue // duplicate index in one batch
		}
		last = idx
		if idx < 0 || idx >= len(s.rows) {
			continue
		}
		s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	}

	if len(s.rows) == 0 {
		s.AddRow()
	}
}

// Reset discards all draft rows and starts over with a single blank row.
// Called after a successful submit.
func (s *State) Reset() {
	s.rows = s.rows[:0]
	s.AddRow()
}

// =============================================================================
// FIELD MUTATION
// =============================================================================

// SetPart sets the part selection of row i and applies the auto-grow rule.
func (s *State) SetPart(i int, label string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.rows[i].PartLabel = label
	s.autoGrow()
	return nil
}

// SetQuantity sets the quantity of row i. Negative quantities are rejected at
// the edit boundary; zero is representable but never persisted.
func (s *State) SetQuantity(i, quantity int) error {
	if err := s.check(i); err != nil {
		return err
	}
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	s.rows[i].Quantity = quantity
	return nil
}

// SetFrom sets the source location of row i.
func (s *State) SetFrom(i int, location string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.rows[i].FromLocation = location
	return nil
}

// SetTo sets the destination location of row i.
func (s *State) SetTo(i int, location string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.rows[i].ToLocation = location
	return nil
}

// autoGrow appends a blank row whenever the last row has a part selection,
// so the form always offers exactly one empty slot at the bottom.
func (s *State) autoGrow() {
	if n := len(s.rows); n > 0 && !s.rows[n-1].Blank() {
		s.AddRow()
	}
}

func (s *State) check(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row index %d out of range (have %d rows)", i, len(s.rows))
	}
	return nil
}

// =============================================================================
// SUBMISSION VIEW
// =============================================================================

// ValidRows returns the rows that qualify for persistence: non-empty part
// selection and positive quantity. Blank padding rows and zero-quantity rows
// fall out here.
func (s *State) ValidRows() []types.DraftRow {
	var out []types.DraftRow
	for _, row := range s.rows {
		if row.Valid() {
			out = append(out, row)
		}
	}
	return out
}
