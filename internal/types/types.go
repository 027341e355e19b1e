// =============================================================================
// Stock Transfer Tracker - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - catalog
//   - form
//   - transferlog
//   - tui
//
// =============================================================================

package types

import "strings"

// LabelSeparator joins a part's code and name into its combined display label,
// and is the split point when a selected label is persisted back as
// code + description. Only the first occurrence is significant on split.
const LabelSeparator = " - "

// =============================================================================
// REFERENCE DATA TYPES
// =============================================================================

// Part is a single entry from the part catalogue. Reference data; immutable
// once loaded.
type Part struct {
	// Code is the item code from the catalogue (e.g. "ABC123").
	Code string

	// Name is the human-readable item name.
	Name string
}

// Label returns the combined display label for the part, "CODE - NAME".
// A part with no name is displayed as its bare code.
func (p Part) Label() string {
	if p.Name == "" {
		return p.Code
	}
	return p.Code + LabelSeparator + p.Name
}

// SplitLabel splits a combined label back into item code and description on
// the first separator occurrence. A label with no separator is treated as a
// bare code with an empty description; this is not an error.
func SplitLabel(label string) (code, description string) {
	code, description, found := strings.Cut(label, LabelSeparator)
	if !found {
		return label, ""
	}
	return code, description
}

// =============================================================================
// DRAFT AND PERSISTED TRANSFER TYPES
// =============================================================================

// DraftRow is a single unsaved, in-progress transfer entry. It lives only in
// form state until it is submitted or deleted.
type DraftRow struct {
	// PartLabel is the selected combined part label, or "" when nothing has
	// been selected yet.
	PartLabel string `yaml:"part"`

	// Quantity is the number of units to transfer. Rows with a quantity of
	// zero or less are never persisted.
	Quantity int `yaml:"quantity"`

	// FromLocation is the source storage location.
	FromLocation string `yaml:"from"`

	// ToLocation is the destination storage location.
	ToLocation string `yaml:"to"`
}

// Valid reports whether the row qualifies for persistence: a non-empty part
// selection and a positive quantity.
func (r DraftRow) Valid() bool {
	return r.PartLabel != "" && r.Quantity > 0
}

// Blank reports whether the row carries no user input beyond its location
// defaults.
func (r DraftRow) Blank() bool {
	return r.PartLabel == ""
}

// Record is a persisted transfer log entry. Records are written once and
// never mutated or deleted.
type Record struct {
	// Date is the submission date, "2006-01-02", in the configured zone.
	Date string

	// Time is the submission time, "15:04:05", in the configured zone.
	Time string

	// ItemNo is the item code split out of the selected label.
	ItemNo string

	// ItemDescription is the item name split out of the selected label.
	// Empty when the label carried no separator.
	ItemDescription string

	// Quantity is the transferred quantity.
	Quantity int

	// FromLocation is the source storage location.
	FromLocation string

	// ToLocation is the destination storage location.
	ToLocation string

	// BatchID identifies the submit batch this record was written in.
	BatchID string
}
