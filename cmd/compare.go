package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	file      string
	scenarios string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare stress scenarios side by side" }
func (*compareCmd) Usage() string {
	return `xfin compare -f <portfolio.csv> [-s <scenario,scenario,...>]

  Runs several stress scenarios against the same portfolio and prints a
  comparison table. Without -s, every catalog scenario is compared.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV export to analyze")
	f.StringVar(&c.scenarios, "s", "", "Comma-separated scenario keys (default: all)")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("compare needs -f <portfolio.csv>")
	}

	holdings, _, err := LoadHoldings(c.file)
	if err != nil {
		return fail(err)
	}
	catalog, err := LoadCatalog()
	if err != nil {
		return fail(err)
	}

	keys := catalog.Keys()
	if c.scenarios != "" {
		keys = keys[:0]
		for _, key := range strings.Split(c.scenarios, ",") {
			keys = append(keys, strings.TrimSpace(key))
		}
	}

	engine := xfin.NewEngine(catalog, nil, Logger())
	rows := engine.Compare(xfin.Analyze(holdings), keys)
	printMarkdown(renderer.ComparisonMarkdown(rows))
	return subcommands.ExitSuccess
}
