package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	xfin "github.com/DhruvParmar10/XFIN"
)

// AllocationMarkdown renders the portfolio allocation breakdown.
func AllocationMarkdown(a xfin.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Allocation")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Value", inr(a.TotalValue)},
			{"Holdings", fmt.Sprintf("%d", a.NumAssets)},
			{"Categories", fmt.Sprintf("%d", a.CategoriesCount)},
			{"Concentration Risk", fmt.Sprintf("%.2f", a.ConcentrationRisk)},
			{"Value Source", a.ValueSource},
		},
	})

	doc.H2("By Category")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Weight", "Value"},
	}
	for _, cat := range sortedCategories(a.Composition) {
		w := a.Composition[cat]
		table.Rows = append(table.Rows, []string{
			displayName(string(cat)),
			pct(w),
			inr(w * a.TotalValue),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SectorMarkdown renders a per-sector value breakdown. sectors maps sector
// name to total value; order follows descending value.
func SectorMarkdown(sectors map[string]float64, total float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sector Exposure")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Sector", "Value", "Share"},
	}
	for _, name := range sortedKeysByValue(sectors) {
		v := sectors[name]
		share := 0.0
		if total > 0 {
			share = v / total
		}
		table.Rows = append(table.Rows, []string{name, inr(v), pct(share)})
	}
	doc.Table(table)

	return doc.String()
}
