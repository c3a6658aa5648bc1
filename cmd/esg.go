package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/esg"
	"github.com/DhruvParmar10/XFIN/renderer"
	"github.com/DhruvParmar10/XFIN/yahoo"
)

type esgCmd struct {
	cache string
	stats bool
	clear bool
}

func (*esgCmd) Name() string     { return "esg" }
func (*esgCmd) Synopsis() string { return "fetch ESG scores for securities" }
func (*esgCmd) Usage() string {
	return `xfin esg [-cache <path>] <company|ticker>...
xfin esg -stats
xfin esg -clear [ticker]

  Fetches environmental, social and governance scores from Yahoo Finance,
  caching results locally. -stats summarizes the cache; -clear empties it
  (or removes a single ticker).
`
}

func (c *esgCmd) SetFlags(f *flag.FlagSet) {
	defaultCache := os.Getenv("XFIN_ESG_CACHE")
	if defaultCache == "" {
		defaultCache = "esg_cache.db"
	}
	f.StringVar(&c.cache, "cache", defaultCache, "Path to the local ESG cache database")
	f.BoolVar(&c.stats, "stats", false, "Print cache statistics and exit")
	f.BoolVar(&c.clear, "clear", false, "Clear cached entries and exit")
}

func (c *esgCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	store, err := esg.Open(c.cache)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if c.stats {
		st, err := store.Stats()
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ESGStatsMarkdown(st))
		return subcommands.ExitSuccess
	}

	if c.clear {
		ticker := ""
		if f.NArg() > 0 {
			ticker = f.Arg(0)
		}
		if err := store.Clear(ticker); err != nil {
			return fail(err)
		}
		if ticker == "" {
			fmt.Fprintln(os.Stderr, "esg cache cleared")
		} else {
			fmt.Fprintf(os.Stderr, "esg cache cleared for %s\n", ticker)
		}
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		return usageError("esg needs at least one company name or ticker")
	}

	fetcher := esg.NewFetcher(store, yahoo.New(Logger()), Logger())
	for _, name := range f.Args() {
		ticker := xfin.ResolveTicker(name, "", "")
		scores, err := fetcher.Fetch(name, "", "")
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ESGMarkdown(ticker, scores))
	}
	return subcommands.ExitSuccess
}
