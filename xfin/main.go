package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/DhruvParmar10/XFIN/cmd"
)

func main() {
	// A .env next to the binary may carry GEMINI_API_KEY. Missing is fine.
	godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{
			"f": predict.Files("*.csv"),
			"s": predict.Nothing,
		}}
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	// Shell completion; exits when invoked by the shell's completer.
	completion := &complete.Command{Sub: sub}
	completion.Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
