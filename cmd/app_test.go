package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHoldings(t *testing.T) {
	path := writeFile(t, "portfolio.csv", `Stock Name,ISIN,Quantity,Current Value
Reliance Industries Ltd,INE002A01018,10,"25,000"
Tata Consultancy Services Ltd,INE467B01029,5,"17,500"
`)

	holdings, diag, err := LoadHoldings(path)
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, "Reliance Industries Ltd", holdings[0].DisplayName)
	assert.Equal(t, 25000.0, holdings[0].Value)
	assert.Equal(t, 2, diag.RowsRead)
}

func TestLoadHoldingsMissingFile(t *testing.T) {
	_, _, err := LoadHoldings(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCatalogDefault(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	assert.Contains(t, catalog.Keys(), "market_correction")
}

func TestLoadCatalogOverride(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", `scenarios:
  flash_crash:
    name: Flash Crash
    description: Sudden intraday sell-off.
    probability: 0.05
    factors:
      large_cap_stocks: -0.30
`)
	old := *scenariosFile
	*scenariosFile = path
	defer func() { *scenariosFile = old }()

	catalog, err := LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"flash_crash"}, catalog.Keys())
}
