package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/advisor"
)

type assistCmd struct {
	file     string
	scenario string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "get AI recommendations for a stress scenario" }
func (*assistCmd) Usage() string {
	return `xfin assist -f <portfolio.csv> [-s <scenario>]

  Runs the stress test and asks Gemini for recommendations on the result.
  Requires GEMINI_API_KEY in the environment; without it, generic
  guidelines are printed instead.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV export to analyze")
	f.StringVar(&c.scenario, "s", "market_correction", "Scenario to advise on")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("assist needs -f <portfolio.csv>")
	}

	holdings, _, err := LoadHoldings(c.file)
	if err != nil {
		return fail(err)
	}
	catalog, err := LoadCatalog()
	if err != nil {
		return fail(err)
	}

	log := Logger()
	engine := xfin.NewEngine(catalog, nil, log)
	result := engine.ExplainImpact(xfin.Analyze(holdings), c.scenario)

	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, printing generic guidelines")
		printMarkdown(advisor.Fallback(result))
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}
	a, err := advisor.New(ctx, client)
	if err != nil {
		return fail(err)
	}

	text, err := a.Recommendations(ctx, result)
	if err != nil {
		log.Warn().Err(err).Msg("advisor unavailable, printing generic guidelines")
		text = advisor.Fallback(result)
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}
