package advisor

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	xfin "github.com/DhruvParmar10/XFIN"
)

func sampleResult() xfin.ScenarioAnalysis {
	engine := xfin.NewEngine(nil, nil, zerolog.Nop())
	return engine.ExplainImpact(xfin.Analysis{
		Composition:       xfin.Composition{xfin.LargeCapStocks: 1.0},
		TotalWeight:       1.0,
		NumAssets:         3,
		CategoriesCount:   1,
		ConcentrationRisk: 1.0,
		TotalValue:        30000,
		ValueSource:       "Invested Value",
	}, "market_correction")
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(sampleResult())

	assert.Contains(t, prompt, "SCENARIO: Market Correction")
	assert.Contains(t, prompt, "Total Portfolio Value: ₹30000")
	assert.Contains(t, prompt, "Large Cap Stocks: 100.0%")
	assert.Contains(t, prompt, "Portfolio Impact: -12.0%")
	assert.Contains(t, prompt, "Rupee Impact: ₹3600")
	assert.Contains(t, prompt, "Risk Level: Medium")
	assert.Contains(t, prompt, "VaR (95%): -18.0%")
	assert.Contains(t, prompt, "WHEN TO SEEK HELP")
}

func TestFallback(t *testing.T) {
	out := Fallback(sampleResult())
	assert.True(t, strings.HasPrefix(out, "## Basic Guidelines"))
	assert.Contains(t, out, "-12.0%")
	assert.Contains(t, out, "Medium")
	assert.Contains(t, out, "SEBI registered investment advisor")
}

func TestDisplayCategory(t *testing.T) {
	assert.Equal(t, "Large Cap Stocks", displayCategory(xfin.LargeCapStocks))
	assert.Equal(t, "Reits", displayCategory(xfin.REITs))
}
