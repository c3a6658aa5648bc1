package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	xfin "github.com/DhruvParmar10/XFIN"
)

// renderHTML pushes the markdown through goldmark: anything structurally
// broken fails to convert or drops content.
func renderHTML(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	require.NoError(t, gm.Convert([]byte(source), &out))
	return out.String()
}

func sampleAnalysis() xfin.Analysis {
	return xfin.Analysis{
		Composition: xfin.Composition{
			xfin.LargeCapStocks: 0.7,
			xfin.TechStocks:     0.3,
		},
		TotalWeight:       1.0,
		NumAssets:         5,
		ConcentrationRisk: 0.58,
		CategoriesCount:   2,
		TotalValue:        100000,
		ValueSource:       "Invested Value",
	}
}

func TestImpactMarkdown(t *testing.T) {
	engine := xfin.NewEngine(nil, nil, zerolog.Nop())
	sa := engine.ExplainImpact(sampleAnalysis(), "market_correction")

	out := ImpactMarkdown(sa)
	assert.Contains(t, out, "# Stress Test: Market Correction")
	assert.Contains(t, out, "Risk Level")
	assert.Contains(t, out, "Large Cap Stocks")
	// 0.7×-0.12 + 0.3×-0.15 = -12.9%
	assert.Contains(t, out, "-12.9%")

	html := renderHTML(t, out)
	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<table>")
}

func TestImpactMarkdownUnpricedCategoryShock(t *testing.T) {
	catalog := xfin.NewCatalog(
		[]string{"rate_shock"},
		map[string]xfin.Scenario{
			"rate_shock": {Name: "Rate Shock", Factors: map[xfin.AssetCategory]float64{xfin.Bonds: -0.20}},
		},
	)
	engine := xfin.NewEngine(catalog, nil, zerolog.Nop())
	sa := engine.ExplainImpact(sampleAnalysis(), "rate_shock")

	// Categories the scenario does not price show the same blanket shock
	// the engine applies.
	out := ImpactMarkdown(sa)
	assert.Contains(t, out, signedPct(xfin.MissingFactorShock*100))
}

func TestComparisonMarkdown(t *testing.T) {
	rows := []xfin.ComparisonRow{
		{Scenario: "Market Correction", ImpactPercent: -12.0, RiskLevel: xfin.RiskMedium, RecoveryMonths: 11.52},
		{Scenario: "Recession Scenario", ImpactPercent: -22.0, RiskLevel: xfin.RiskHigh, RecoveryMonths: 21.12},
	}
	out := ComparisonMarkdown(rows)
	assert.Contains(t, out, "# Scenario Comparison")
	assert.Contains(t, out, "Worst case: Recession Scenario at -22.0%.")

	html := renderHTML(t, out)
	assert.Contains(t, html, "<table>")
}

func TestComparisonMarkdownEmpty(t *testing.T) {
	out := ComparisonMarkdown(nil)
	assert.Contains(t, out, "No scenarios analyzed.")
}

func TestAllocationMarkdown(t *testing.T) {
	out := AllocationMarkdown(sampleAnalysis())
	assert.Contains(t, out, "# Portfolio Allocation")
	assert.Contains(t, out, "70.0%")
	// Heavier category listed first.
	assert.Less(t, strings.Index(out, "Large Cap Stocks"), strings.Index(out, "Tech Stocks"))

	renderHTML(t, out)
}

func TestSectorMarkdown(t *testing.T) {
	out := SectorMarkdown(map[string]float64{
		"Banking":     60000,
		"IT Services": 40000,
	}, 100000)
	assert.Contains(t, out, "# Sector Exposure")
	assert.Contains(t, out, "60.0%")
	assert.Less(t, strings.Index(out, "Banking"), strings.Index(out, "IT Services"))
}

func TestDiagnosticsMarkdown(t *testing.T) {
	holdings := []xfin.Holding{
		{DisplayName: "HDFC BANK", ValueSource: "Invested Value"},
		{DisplayName: "RELIANCE", ValueSource: "Invested Value", Salvage: xfin.SalvageUsedSymbol},
	}
	d := xfin.NewDiagnostics(holdings, 3, []xfin.SkippedRow{{Index: 2, Reason: "no usable identity or numeric data"}})

	out := DiagnosticsMarkdown(d)
	assert.Contains(t, out, "# Ingestion Diagnostics")
	assert.Contains(t, out, "Salvage Breakdown")
	assert.Contains(t, out, "used_symbol")
	assert.Contains(t, out, "row 2: no usable identity or numeric data")

	renderHTML(t, out)
}

func TestINRFormatting(t *testing.T) {
	assert.Contains(t, inr(50000), "50,000")
	assert.Contains(t, inr(50000), "₹")
}
