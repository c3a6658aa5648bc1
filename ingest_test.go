package xfin

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestTypicalExport(t *testing.T) {
	table := NewTable(
		[]string{"Stock Name", "Symbol", "ISIN", "Quantity", "Average buy price"},
		[][]string{
			{"HDFC BANK LTD", "HDFCBANK", "INE040A01034", "10", "1500.50"},
			{"TATA CONSULTANCY SERVICES", "TCS", "INE467B01029", "2", "3500"},
			{"", "RELIANCE", "INE002A01018", "5", "2400"},
		},
	)

	in := NewIngester(zerolog.Nop())
	holdings, diag, err := in.Ingest(table)
	require.NoError(t, err)
	require.Len(t, holdings, 3)

	assert.Equal(t, "HDFC BANK LTD", holdings[0].DisplayName)
	assert.Equal(t, 15005.0, holdings[0].Value)
	assert.Equal(t, "Invested Value", holdings[0].ValueSource)
	assert.Equal(t, SalvageNone, holdings[0].Salvage)

	// Missing name salvaged from the symbol.
	assert.Equal(t, "RELIANCE", holdings[2].DisplayName)
	assert.Equal(t, SalvageUsedSymbol, holdings[2].Salvage)
	assert.Equal(t, 12000.0, holdings[2].Value)

	assert.Equal(t, 3, diag.RowsRead)
	assert.Equal(t, 3, diag.RowsProcessed)
	assert.Equal(t, 1, diag.RowsSalvaged)
	assert.Equal(t, 0, diag.RowsSkipped)
	assert.Equal(t, 2, diag.SalvageBreakdown["normal"])
	assert.Equal(t, 1, diag.SalvageBreakdown[string(SalvageUsedSymbol)])
	assert.Equal(t, 3, diag.ValueSourceBreakdown["Invested Value"])
}

func TestIngestSalvageChain(t *testing.T) {
	table := NewTable(
		[]string{"Stock Name", "Symbol", "ISIN", "Quantity", "Closing price"},
		[][]string{
			{"", "", "INE062A01020", "3", "800"},  // ISIN only
			{"nan", "SBIN", "", "2", "800"},       // blank marker name, symbol present
			{"", "", "", "4", "100"},              // numeric data only
			{"", "", "", "", ""},                  // nothing at all
		},
	)

	in := NewIngester(zerolog.Nop())
	holdings, diag, err := in.Ingest(table)
	require.NoError(t, err)
	require.Len(t, holdings, 3)

	assert.Equal(t, "INE062A01020", holdings[0].DisplayName)
	assert.Equal(t, SalvageUsedISIN, holdings[0].Salvage)

	assert.Equal(t, "SBIN", holdings[1].DisplayName)
	assert.Equal(t, SalvageUsedSymbol, holdings[1].Salvage)

	assert.Equal(t, "Unknown (salvaged row)", holdings[2].DisplayName)
	assert.Equal(t, SalvageNumeric, holdings[2].Salvage)
	assert.Equal(t, 400.0, holdings[2].Value)
	assert.Equal(t, "Current Value", holdings[2].ValueSource)

	assert.Equal(t, 1, diag.RowsSkipped)
	require.Len(t, diag.Skipped, 1)
	assert.Equal(t, 3, diag.Skipped[0].Index)
}

func TestIngestSyntheticNames(t *testing.T) {
	// Symbol and ISIN columns resolve but the cells hold blank markers, so
	// the synthetic name falls through to the identifier that is present.
	table := NewTable(
		[]string{"Stock Name", "Symbol", "ISIN", "Value"},
		[][]string{
			{"", "null", "INE0ABCD1234", "500"},
		},
	)
	in := NewIngester(zerolog.Nop())
	holdings, _, err := in.Ingest(table)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	// ISIN salvage beats the numeric synthetic name.
	assert.Equal(t, "INE0ABCD1234", holdings[0].DisplayName)
}

func TestIngestIgnoresMalformedISINIdentity(t *testing.T) {
	// A cell in the ISIN column that is not even ISIN-shaped is junk, not
	// an identity; the row survives on its numeric data instead.
	table := NewTable(
		[]string{"Stock Name", "ISIN", "Value"},
		[][]string{
			{"", "BAD-ISIN-12", "900"},
		},
	)
	in := NewIngester(zerolog.Nop())
	holdings, _, err := in.Ingest(table)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "Unknown (salvaged row)", holdings[0].DisplayName)
	assert.Equal(t, SalvageNumeric, holdings[0].Salvage)
	assert.Equal(t, 900.0, holdings[0].Value)
}

func TestIngestNumericSalvageNamePrefix(t *testing.T) {
	roles := ColumnRoleMap{}
	in := NewIngester(zerolog.Nop())

	h, _ := in.extract(Row{"Qty": "5"}, roles, []string{"Qty"})
	require.NotNil(t, h)
	assert.Equal(t, "Unknown (salvaged row)", h.DisplayName)

	// All-zero numeric data is not meaningful.
	h, _ = in.extract(Row{"Qty": "0"}, roles, []string{"Qty"})
	assert.Nil(t, h)
}

func TestIngestNoUsableColumns(t *testing.T) {
	table := NewTable(
		[]string{"Remarks", "Notes"},
		[][]string{{"hello", "world"}},
	)
	in := NewIngester(zerolog.Nop())
	_, _, err := in.Ingest(table)
	assert.ErrorIs(t, err, ErrNoUsableColumns)
}

func TestIngestEmptyPortfolioIsNotAnError(t *testing.T) {
	table := NewTable(
		[]string{"Stock Name", "Quantity", "Average buy price"},
		[][]string{{"", "", ""}},
	)
	in := NewIngester(zerolog.Nop())
	holdings, diag, err := in.Ingest(table)
	require.NoError(t, err)
	assert.Empty(t, holdings)
	assert.Equal(t, 1, diag.RowsSkipped)
}

func TestHoldingValuePriority(t *testing.T) {
	in := NewIngester(zerolog.Nop())

	roles := ColumnRoleMap{
		Quantity: "Qty", AvgPrice: "Avg", Close: "Close", Value: "Value",
		PriceColumns: []string{"2025-10-25"},
	}
	row := Row{"Qty": "10", "Avg": "100", "Close": "110", "Value": "5000", "2025-10-25": "120"}

	v, src := in.holdingValue(row, roles)
	assert.Equal(t, 1000.0, v)
	assert.Equal(t, "Invested Value", src)

	// Without avg price, close wins.
	delete(row, "Avg")
	v, src = in.holdingValue(row, roles)
	assert.Equal(t, 1100.0, v)
	assert.Equal(t, "Current Value", src)

	// Without prices, the value column is used verbatim and keeps its name.
	delete(row, "Close")
	v, src = in.holdingValue(row, roles)
	assert.Equal(t, 5000.0, v)
	assert.Equal(t, "Value", src)

	// Last resort without a value column: most recent date-price column
	// times quantity.
	roles.Value = ""
	delete(row, "Value")
	v, src = in.holdingValue(row, roles)
	assert.Equal(t, 1200.0, v)
	assert.Equal(t, "2025-10-25", src)

	// No quantity and no value column at all.
	delete(row, "Qty")
	v, src = in.holdingValue(row, roles)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "unknown", src)
}

func TestMulExactAvoidsFloatNoise(t *testing.T) {
	assert.Equal(t, 0.3, mulExact(0.1, 3))
	assert.Equal(t, 15005.0, mulExact(10, 1500.5))
}
