package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	xfin "github.com/DhruvParmar10/XFIN"
)

// DiagnosticsMarkdown renders an ingestion diagnostics report.
func DiagnosticsMarkdown(d *xfin.Diagnostics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ingestion Diagnostics")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Count"},
		Rows: [][]string{
			{"Rows read", fmt.Sprintf("%d", d.RowsRead)},
			{"Rows processed", fmt.Sprintf("%d", d.RowsProcessed)},
			{"Rows salvaged", fmt.Sprintf("%d", d.RowsSalvaged)},
			{"Rows skipped", fmt.Sprintf("%d", d.RowsSkipped)},
		},
	})

	if len(d.SalvageBreakdown) > 0 {
		doc.H2("Salvage Breakdown")
		doc.Table(countTable("Reason", d.SalvageBreakdown))
	}
	if len(d.ValueSourceBreakdown) > 0 {
		doc.H2("Value Sources")
		doc.Table(countTable("Source", d.ValueSourceBreakdown))
	}

	if len(d.Skipped) > 0 {
		doc.H2("Skipped Rows")
		var items []string
		for _, s := range d.Skipped {
			items = append(items, fmt.Sprintf("row %d: %s", s.Index, s.Reason))
		}
		doc.BulletList(items...)
	}

	return doc.String()
}

// countTable renders a breakdown map as a two-column table with stable key
// order.
func countTable(label string, counts map[string]int) md.TableSet {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{label, "Count"},
	}
	for _, k := range keys {
		table.Rows = append(table.Rows, []string{k, fmt.Sprintf("%d", counts[k])})
	}
	return table
}
