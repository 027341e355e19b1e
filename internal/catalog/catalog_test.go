package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/brianbrainbrian/TransferTracker/internal/config"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

// writeWorkbook writes rows to a fresh single-sheet XLSX file.
func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

// ─── Locations ───────────────────────────────────────────────────────────────

func TestLoadLocationsSortedUniqueNonBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book1.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Bin Location Description", "Stock On Hand"},
		{"Bin C3", 4},
		{"Bin A1", 9},
		{"Bin C3", 2}, // duplicate
		{"", 1},       // blank
		{"  ", 0},     // whitespace only
		{"Bin B2", 7},
	})

	locations, err := LoadLocations(path, "Bin Location Description", ",")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bin A1", "Bin B2", "Bin C3"}, locations)
}

func TestLoadLocationsMissingColumnIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book1.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Some Other Column"},
		{"Bin A1"},
	})

	_, err := LoadLocations(path, "Bin Location Description", ",")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'Bin Location Description' column not found")
	assert.Contains(t, err.Error(), "book1.xlsx")
}

func TestLoadLocationsMissingFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book1.xlsx")
	_, err := LoadLocations(path, "Bin Location Description", ",")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadLocationsFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book1.csv")
	csv := "Bin Location Description;Stock On Hand\nBin B2;3\nBin A1;1\nBin B2;2\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	locations, err := LoadLocations(path, "Bin Location Description", ";")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bin A1", "Bin B2"}, locations)
}

// ─── Parts ───────────────────────────────────────────────────────────────────

func TestLoadPartsSkipsBlankCodesAndDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CATALOGUE.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Item Code", "ItemName"},
		{"ABC123", "Widget"},
		{"", "Nameless"},
		{"ABC123", "Widget Duplicate"},
		{"XYZ789", "Gadget"},
		{"BARE", ""},
	})

	parts, err := LoadParts(path, "Item Code", "ItemName", ",")
	require.NoError(t, err)

	require.Len(t, parts, 3)
	assert.Equal(t, types.Part{Code: "ABC123", Name: "Widget"}, parts[0])
	assert.Equal(t, types.Part{Code: "XYZ789", Name: "Gadget"}, parts[1])
	assert.Equal(t, types.Part{Code: "BARE"}, parts[2])
}

func TestLoadPartsMissingColumnIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CATALOGUE.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Item Code", "Wrong Header"},
		{"ABC123", "Widget"},
	})

	_, err := LoadParts(path, "Item Code", "ItemName", ",")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'ItemName' column not found")
}

// ─── Catalog ─────────────────────────────────────────────────────────────────

func TestCatalogLookups(t *testing.T) {
	cat := New(
		[]string{"Bin A1", "Bin B2"},
		[]types.Part{{Code: "ABC123", Name: "Widget"}, {Code: "BARE"}},
	)

	assert.Equal(t, "Bin A1", cat.FirstLocation())
	assert.True(t, cat.HasLocation("Bin B2"))
	assert.False(t, cat.HasLocation("Bin Z9"))

	assert.Equal(t, []string{"ABC123 - Widget", "BARE"}, cat.Labels)

	part, ok := cat.PartByLabel("ABC123 - Widget")
	require.True(t, ok)
	assert.Equal(t, "ABC123", part.Code)

	_, ok = cat.PartByLabel("ABC123")
	assert.False(t, ok)
}

func TestCatalogEmptyLocations(t *testing.T) {
	cat := New(nil, []types.Part{{Code: "ABC123"}})
	assert.Equal(t, "", cat.FirstLocation())
}

func TestLoadUsesConfiguredPathsAndColumns(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "book1.xlsx"), [][]interface{}{
		{"Bin Location Description"},
		{"Bin A1"},
	})
	writeWorkbook(t, filepath.Join(dir, "CATALOGUE.xlsx"), [][]interface{}{
		{"Item Code", "ItemName"},
		{"ABC123", "Widget"},
	})

	cfg := refConfig(dir)

	cat, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bin A1"}, cat.Locations)
	assert.Equal(t, []string{"ABC123 - Widget"}, cat.Labels)
}

// refConfig builds a config pointing the loader at dir with the default
// file and column names.
func refConfig(dir string) *config.Config {
	return &config.Config{
		DataDir:        dir,
		LocationsFile:  "book1.xlsx",
		CatalogueFile:  "CATALOGUE.xlsx",
		LocationColumn: "Bin Location Description",
		ItemCodeColumn: "Item Code",
		ItemNameColumn: "ItemName",
		CSVDelimiter:   ",",
	}
}
