package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	xfin "github.com/DhruvParmar10/XFIN"
)

type tickerCmd struct {
	name   string
	isin   string
	symbol string
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "resolve a Yahoo Finance ticker for a security" }
func (*tickerCmd) Usage() string {
	return `xfin ticker [-name <company>] [-isin <isin>] [-symbol <symbol>]

  Resolves the best Yahoo Finance ticker from whatever identifiers are
  available: an exchange symbol, an ISIN, or the company name.
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name")
	f.StringVar(&c.isin, "isin", "", "ISIN code")
	f.StringVar(&c.symbol, "symbol", "", "Exchange symbol")
}

func (c *tickerCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.name == "" && c.isin == "" && c.symbol == "" {
		if f.NArg() == 0 {
			return usageError("ticker needs -name, -isin, -symbol, or a company name argument")
		}
		for _, arg := range f.Args() {
			fmt.Printf("%s: %s\n", arg, xfin.ResolveTicker(arg, "", ""))
		}
		return subcommands.ExitSuccess
	}
	fmt.Println(xfin.ResolveTicker(c.name, c.isin, c.symbol))
	return subcommands.ExitSuccess
}
