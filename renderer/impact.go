package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	xfin "github.com/DhruvParmar10/XFIN"
)

// ImpactMarkdown renders a single-scenario stress report.
func ImpactMarkdown(sa xfin.ScenarioAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Stress Test: %s", sa.Scenario.Name))
	if sa.Scenario.Description != "" {
		doc.PlainText(sa.Scenario.Description)
	}

	impact := sa.Impact
	rupeeImpact := sa.Portfolio.TotalValue * impact.TotalImpact

	doc.H2("Impact")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Portfolio Impact", signedPct(impact.ImpactPercent)},
			{"Rupee Impact", inr(rupeeImpact)},
			{"Risk Level", string(impact.RiskLevel)},
			{"Expected Recovery", fmt.Sprintf("%.0f months", impact.RecoveryMonths)},
			{"VaR (95%)", signedPct(impact.VaR95 * 100)},
		},
	})

	doc.H2("Portfolio")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Value", inr(sa.Portfolio.TotalValue)},
			{"Holdings", fmt.Sprintf("%d", sa.Portfolio.NumAssets)},
			{"Concentration Risk", fmt.Sprintf("%.2f", sa.Portfolio.ConcentrationRisk)},
			{"Value Source", sa.Portfolio.ValueSource},
		},
	})

	doc.H2("Composition Under Stress")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Weight", "Shock"},
	}
	for _, cat := range sortedCategories(sa.Portfolio.Composition) {
		shock, ok := sa.Scenario.Factors[cat]
		if !ok {
			shock = xfin.MissingFactorShock
		}
		table.Rows = append(table.Rows, []string{
			displayName(string(cat)),
			pct(sa.Portfolio.Composition[cat]),
			signedPct(shock * 100),
		})
	}
	doc.Table(table)

	return doc.String()
}

// sortedCategories orders composition keys by descending weight, ties by
// name, so the report is stable run to run.
func sortedCategories(comp xfin.Composition) []xfin.AssetCategory {
	cats := make([]xfin.AssetCategory, 0, len(comp))
	for cat := range comp {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if comp[cats[i]] != comp[cats[j]] {
			return comp[cats[i]] > comp[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}
