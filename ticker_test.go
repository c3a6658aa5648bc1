package xfin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTicker(t *testing.T) {
	tests := []struct {
		name   string
		isin   string
		symbol string
		want   string
	}{
		// Symbol with exchange suffix wins outright.
		{"Reliance Industries", "INE002A01018", "RELIANCE.NS", "RELIANCE.NS"},
		{"", "", "500325.BO", "500325.BO"},
		// ISIN table beats the name table.
		{"Some Unrelated Name", "INE002A01018", "", "RELIANCE.NS"},
		{"", "ine467b01029", "", "TCS.NS"},
		// Name table, with suffix stripping.
		{"Tata Motors Pass Veh Ltd", "", "", "TATAMOTORS.NS"},
		{"Bank of Baroda", "", "", "BANKBARODA.NS"},
		{"Central Depo Ser (I) Ltd", "", "", "CDSL.NS"},
		{"HINDUSTAN PETROLEUM CORPORATION", "", "", "HINDPETRO.NS"},
		// Bare symbol gets the NSE suffix.
		{"", "", "xyz", "XYZ.NS"},
		// First word of an unmapped name.
		{"Zomato Ltd", "", "", "ZOMATO.NS"},
		// Nothing at all.
		{"", "", "", "UNKNOWN.NS"},
	}
	for _, tt := range tests {
		got := ResolveTicker(tt.name, tt.isin, tt.symbol)
		assert.Equal(t, tt.want, got, "name=%q isin=%q symbol=%q", tt.name, tt.isin, tt.symbol)
	}
}

func TestTickerFromName(t *testing.T) {
	assert.Equal(t, "SBIN.NS", TickerFromName("State Bank of India"))
	assert.Equal(t, "PFC.NS", TickerFromName("Power Finance Corporation Ltd"))
	// Partial match: the table key appears inside the cleaned name.
	assert.Equal(t, "SUZLON.NS", TickerFromName("Suzlon Energy Ltd"))
	assert.Equal(t, "", TickerFromName("Totally Unmapped Company"))
	assert.Equal(t, "", TickerFromName(""))
}

func TestTickerFromISIN(t *testing.T) {
	assert.Equal(t, "COALINDIA.NS", TickerFromISIN("INE522F01014"))
	assert.Equal(t, "COALINDIA.NS", TickerFromISIN(" ine522f01014 "))
	assert.Equal(t, "", TickerFromISIN("INE000000000"))
	assert.Equal(t, "", TickerFromISIN(""))
	// Coal India's ISIN with a mangled check digit is not a lookup key.
	assert.Equal(t, "", TickerFromISIN("INE522F01015"))
	assert.Equal(t, "", TickerFromISIN("NOT-AN-ISIN!"))
}
