package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "book1.xlsx", cfg.LocationsFile)
	assert.Equal(t, "CATALOGUE.xlsx", cfg.CatalogueFile)
	assert.Equal(t, "stock_transfers.xlsx", cfg.TransfersFile)
	assert.Equal(t, "Bin Location Description", cfg.LocationColumn)
	assert.Equal(t, "Item Code", cfg.ItemCodeColumn)
	assert.Equal(t, "ItemName", cfg.ItemNameColumn)
	assert.Equal(t, 1, cfg.DefaultQuantity)
	assert.Equal(t, "Australia/Sydney", cfg.Timezone)
	assert.Equal(t, 10, cfg.TailLength)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NotNil(t, cfg.Location())
	assert.Equal(t, "Australia/Sydney", cfg.Location().String())
}

func TestLoadOverridesAndPathResolution(t *testing.T) {
	path := writeConfig(t, `
data_dir: /srv/transfers
locations_file: soh.csv
timezone: UTC
default_quantity: 3
tail_length: 25
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/transfers", cfg.DataDir)
	assert.Equal(t, filepath.Join("/srv/transfers", "soh.csv"), cfg.LocationsPath())
	assert.Equal(t, filepath.Join("/srv/transfers", "CATALOGUE.xlsx"), cfg.CataloguePath())
	assert.Equal(t, 3, cfg.DefaultQuantity)
	assert.Equal(t, 25, cfg.TailLength)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoadAbsoluteFilePathsBypassDataDir(t *testing.T) {
	path := writeConfig(t, `
transfers_file: /var/log/stock_transfers.xlsx
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/stock_transfers.xlsx", cfg.TransfersPath())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad timezone", "timezone: Mars/Olympus", "unknown timezone"},
		{"bad log level", "log_level: loud", "log_level"},
		{"negative quantity", "default_quantity: -2", "default_quantity"},
		{"negative tail", "tail_length: -1", "tail_length"},
		{"long delimiter", `csv_delimiter: "ab"`, "csv_delimiter"},
		{"broken yaml", "data_dir: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
