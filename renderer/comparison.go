package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	xfin "github.com/DhruvParmar10/XFIN"
)

// ComparisonMarkdown renders a multi-scenario comparison table.
func ComparisonMarkdown(rows []xfin.ComparisonRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Scenario Comparison")
	if len(rows) == 0 {
		doc.PlainText("No scenarios analyzed.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Scenario", "Impact", "Risk", "Recovery"},
	}
	worst := rows[0]
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Scenario,
			signedPct(row.ImpactPercent),
			string(row.RiskLevel),
			fmt.Sprintf("%.0f months", row.RecoveryMonths),
		})
		if row.ImpactPercent < worst.ImpactPercent {
			worst = row
		}
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Worst case: %s at %s.", worst.Scenario, signedPct(worst.ImpactPercent)))
	return doc.String()
}
