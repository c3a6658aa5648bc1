package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/DhruvParmar10/XFIN/renderer"
)

type scenariosCmd struct{}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "list the available stress scenarios" }
func (*scenariosCmd) Usage() string {
	return `xfin scenarios

  Prints every scenario in the catalog with its probability and description.
  Use -scenarios-file to point at a custom YAML catalog.
`
}

func (*scenariosCmd) SetFlags(f *flag.FlagSet) {}

func (*scenariosCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	catalog, err := LoadCatalog()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CatalogMarkdown(catalog))
	return subcommands.ExitSuccess
}
