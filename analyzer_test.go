package xfin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	holdings := []Holding{
		{DisplayName: "HDFC BANK LTD", Value: 6000, ValueSource: "Invested Value"},
		{DisplayName: "Apple Inc", Value: 3000, ValueSource: "Invested Value"},
		{DisplayName: "Microsoft Corp", Value: 1000, ValueSource: "Invested Value"},
	}

	a := Analyze(holdings)
	assert.InDelta(t, 0.6, a.Composition[LargeCapStocks], 1e-9)
	assert.InDelta(t, 0.4, a.Composition[TechStocks], 1e-9)
	assert.InDelta(t, 1.0, a.TotalWeight, 1e-9)
	assert.Equal(t, 3, a.NumAssets)
	assert.Equal(t, 2, a.CategoriesCount)
	assert.InDelta(t, 0.36+0.16, a.ConcentrationRisk, 1e-9)
	assert.Equal(t, 10000.0, a.TotalValue)
	assert.Equal(t, "Invested Value", a.ValueSource)
}

func TestAnalyzeSkipsNonPositiveValues(t *testing.T) {
	holdings := []Holding{
		{DisplayName: "HDFC BANK LTD", Value: 5000},
		{DisplayName: "Broken Row", Value: 0},
		{DisplayName: "Refund", Value: -100},
	}
	a := Analyze(holdings)
	require.Equal(t, 1, a.CategoriesCount)
	assert.InDelta(t, 5000.0/4900.0, a.Composition[LargeCapStocks], 1e-9)
	assert.Equal(t, 3, a.NumAssets, "non-positive rows still count as assets")
}

func TestAnalyzeFallsBackToDefault(t *testing.T) {
	def := DefaultAnalysis()

	for name, holdings := range map[string][]Holding{
		"empty": nil,
		"zero total": {
			{DisplayName: "A", Value: 0},
		},
		"negative total": {
			{DisplayName: "A", Value: -100},
		},
	} {
		a := Analyze(holdings)
		assert.Equal(t, def, a, "case %s", name)
	}
}

func TestDefaultAnalysis(t *testing.T) {
	a := DefaultAnalysis()
	assert.InDelta(t, 1.0, a.TotalWeight, 1e-9)
	assert.Equal(t, 20, a.NumAssets)
	assert.Equal(t, 0.25, a.ConcentrationRisk)
	assert.Equal(t, 5, a.CategoriesCount)
	assert.Equal(t, 50000.0, a.TotalValue)
	assert.Equal(t, "Default", a.ValueSource)

	var sum float64
	for _, w := range a.Composition {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
