package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/renderer"
	"github.com/DhruvParmar10/XFIN/yahoo"
)

type sectorCmd struct {
	file string
	api  bool
}

func (*sectorCmd) Name() string     { return "sector" }
func (*sectorCmd) Synopsis() string { return "break a portfolio down by industry sector" }
func (*sectorCmd) Usage() string {
	return `xfin sector -f <portfolio.csv> [-api]

  Classifies each holding into an industry sector and prints the value
  weighting per sector. With -api, Yahoo Finance is consulted first and
  the name-based classifier only fills the gaps.
`
}

func (c *sectorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV export to analyze")
	f.BoolVar(&c.api, "api", false, "Prefer Yahoo Finance sector data over name matching")
}

func (c *sectorCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("sector needs -f <portfolio.csv>")
	}

	holdings, _, err := LoadHoldings(c.file)
	if err != nil {
		return fail(err)
	}

	var lookup xfin.SectorLookup
	if c.api {
		lookup = yahoo.New(Logger())
	}

	sectors := make(map[string]float64)
	total := 0.0
	for _, h := range holdings {
		if h.Value <= 0 {
			continue
		}
		ticker := xfin.ResolveTicker(h.DisplayName, h.ISIN, h.Symbol)
		sector := xfin.GetSector(h.DisplayName, ticker, c.api, lookup)
		sectors[string(sector)] += h.Value
		total += h.Value
	}

	printMarkdown(renderer.SectorMarkdown(sectors, total))
	return subcommands.ExitSuccess
}
