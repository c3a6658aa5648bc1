package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	file     string
	scenario string
	diag     bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run a stress scenario against a portfolio export" }
func (*analyzeCmd) Usage() string {
	return `xfin analyze -f <portfolio.csv> [-s <scenario>] [-diag]

  Ingests a broker CSV export, analyzes its allocation and applies the
  selected stress scenario.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV export to analyze")
	f.StringVar(&c.scenario, "s", "market_correction", "Scenario to apply")
	f.BoolVar(&c.diag, "diag", false, "Also print ingestion diagnostics")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("analyze needs -f <portfolio.csv>")
	}

	holdings, diag, err := LoadHoldings(c.file)
	if err != nil {
		return fail(err)
	}
	catalog, err := LoadCatalog()
	if err != nil {
		return fail(err)
	}

	analysis := xfin.Analyze(holdings)
	engine := xfin.NewEngine(catalog, nil, Logger())
	sa := engine.ExplainImpact(analysis, c.scenario)

	printMarkdown(renderer.AllocationMarkdown(analysis))
	printMarkdown(renderer.ImpactMarkdown(sa))
	if c.diag {
		printMarkdown(renderer.DiagnosticsMarkdown(diag))
	}
	return subcommands.ExitSuccess
}
