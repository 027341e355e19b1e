// =============================================================================
// Stock Transfer Tracker - Reference Data Loader
// =============================================================================
//
// This module loads the two lookup tables the tracker depends on:
//
//   1. The locations file: the stock-on-hand export whose location-description
//      column yields the set of known storage bins.
//   2. The catalogue file: the part catalogue with item-code and item-name
//      columns, combined into a "CODE - NAME" display label per part.
//
// Both tables may be .xlsx workbooks or .csv exports; the reader is picked by
// file extension. Reference data is loaded once at startup and is immutable
// afterwards.
//
// ERROR HANDLING:
//   A missing file or a missing required column is fatal. There is no partial
//   mode: without reference data the form cannot offer a single valid choice,
//   so the whole command aborts with a user-facing message.
//
// =============================================================================

package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/brianbrainbrian/TransferTracker/internal/config"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

// =============================================================================
// CATALOG STRUCTURE
// =============================================================================

// Catalog holds all loaded reference data.
type Catalog struct {
	// Locations is the sorted set of distinct, non-blank location
	// descriptions found in the locations file.
	Locations []string

	// Parts are the catalogue entries in file order, first occurrence
	// winning on duplicate codes.
	Parts []types.Part

	// Labels are the combined display labels for Parts, in the same order.
	Labels []string

	byLabel    map[string]types.Part
	byLocation map[string]struct{}
}

// Load reads both reference tables using the paths and column names from the
// configuration.
func Load(cfg *config.Config) (*Catalog, error) {
	locations, err := LoadLocations(cfg.LocationsPath(), cfg.LocationColumn, cfg.CSVDelimiter)
	if err != nil {
		return nil, err
	}

	parts, err := LoadParts(cfg.CataloguePath(), cfg.ItemCodeColumn, cfg.ItemNameColumn, cfg.CSVDelimiter)
	if err != nil {
		return nil, err
	}

	return New(locations, parts), nil
}

// New builds a Catalog from already-loaded reference data. Split out from
// Load so form and TUI tests can construct catalogs without touching disk.
func New(locations []string, parts []types.Part) *Catalog {
	c := &Catalog{
		Locations:  locations,
		Parts:      parts,
		Labels:     make([]string, 0, len(parts)),
		byLabel:    make(map[string]types.Part, len(parts)),
		byLocation: make(map[string]struct{}, len(locations)),
	}
	for _, p := range parts {
		label := p.Label()
		c.Labels = append(c.Labels, label)
		c.byLabel[label] = p
	}
	for _, loc := range locations {
		c.byLocation[loc] = struct{}{}
	}
	return c
}

// FirstLocation returns the first location in sort order, or "" when the
// location list is empty.
func (c *Catalog) FirstLocation() string {
	if len(c.Locations) == 0 {
		return ""
	}
	return c.Locations[0]
}

// HasLocation reports whether the given location exists in the reference set.
func (c *Catalog) HasLocation(location string) bool {
	_, ok := c.byLocation[location]
	return ok
}

// PartByLabel resolves a combined display label back to its catalogue entry.
func (c *Catalog) PartByLabel(label string) (types.Part, bool) {
	p, ok := c.byLabel[label]
	return p, ok
}

// =============================================================================
// TABLE LOADERS
// =============================================================================

// LoadLocations reads the locations table and returns the sorted set of
// distinct, non-blank values in the named column.
func LoadLocations(path, column, csvDelimiter string) ([]string, error) {
	rows, err := readTable(path, csvDelimiter)
	if err != nil {
		return nil, err
	}

	col, err := findColumn(rows, column, path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var locations []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[col])
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		locations = append(locations, value)
	}

	if len(locations) == 0 {
		return nil, fmt.Errorf("no locations found in column '%s' of %s", column, filepath.Base(path))
	}

	sort.Strings(locations)
	return locations, nil
}

// LoadParts reads the catalogue table and returns its parts in file order.
// Rows with a blank item code are skipped; on duplicate codes the first
// occurrence wins.
func LoadParts(path, codeColumn, nameColumn, csvDelimiter string) ([]types.Part, error) {
	rows, err := readTable(path, csvDelimiter)
	if err != nil {
		return nil, err
	}

	codeCol, err := findColumn(rows, codeColumn, path)
	if err != nil {
		return nil, err
	}
	nameCol, err := findColumn(rows, nameColumn, path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var parts []types.Part
	for _, row := range rows[1:] {
		part := types.Part{
			Code: cellAt(row, codeCol),
			Name: cellAt(row, nameCol),
		}
		if part.Code == "" {
			continue
		}
		if _, dup := seen[part.Code]; dup {
			continue
		}
		seen[part.Code] = struct{}{}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("no parts found in %s", filepath.Base(path))
	}

	return parts, nil
}

// =============================================================================
// TABLE READING
// =============================================================================

// readTable reads a tabular file into rows of cells. The reader is selected
// by extension: .xlsx workbooks go through excelize, anything else is parsed
// as delimited text.
func readTable(path, csvDelimiter string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reference file %s not found: %w", filepath.Base(path), err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	default:
		rows, err = readCSV(path, csvDelimiter)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 1 {
		return nil, fmt.Errorf("reference file %s is empty", filepath.Base(path))
	}
	return rows, nil
}

// readWorkbook reads all rows of the first sheet of an XLSX workbook.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// readCSV reads all records of a delimited text file.
func readCSV(path, delimiter string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = []rune(delimiter)[0]
	// Reference exports are ragged more often than not; let rows differ.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// findColumn locates a header in the first row, matching on the trimmed cell
// value. A missing column is the classic fatal misconfiguration here, so the
// error names both the column and the file.
func findColumn(rows [][]string, column, path string) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("reference file %s is empty", filepath.Base(path))
	}
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == column {
			return i, nil
		}
	}
	return 0, fmt.Errorf("'%s' column not found in %s", column, filepath.Base(path))
}

// cellAt returns the trimmed cell at index i, or "" when the row is too short.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
