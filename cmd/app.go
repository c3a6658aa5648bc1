// Package cmd implements the CLI application to analyze portfolio exports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	xfin "github.com/DhruvParmar10/XFIN"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&compareCmd{},
	&scenariosCmd{},
	&tickerCmd{},
	&sectorCmd{},
	&esgCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenariosFile = flag.String("scenarios-file", "", "Path to a YAML scenario catalog overriding the built-in scenarios")
var verbose = flag.Bool("v", false, "Log ingestion and salvage details")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering for the terminal")

// Logger returns the application logger, a console writer on stderr. Debug
// detail shows up only with -v.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// LoadHoldings parses a broker CSV export and ingests it into holdings.
func LoadHoldings(path string) ([]xfin.Holding, *xfin.Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	table, err := xfin.ParseBrokerCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse %q: %w", path, err)
	}
	return xfin.NewIngester(Logger()).Ingest(table)
}

// LoadCatalog returns the configured scenario catalog: the YAML override
// when -scenarios-file is set, the built-in catalog otherwise.
func LoadCatalog() (*xfin.Catalog, error) {
	if *scenariosFile == "" {
		return xfin.DefaultCatalog(), nil
	}
	return xfin.LoadCatalogFile(*scenariosFile)
}

// printMarkdown renders markdown for the terminal; with -plain (or when
// the renderer fails) the raw markdown is printed as-is.
func printMarkdown(md string) {
	if !*plain {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, msg)
	return subcommands.ExitUsageError
}
