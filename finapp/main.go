package main

import (
	"context"
	"flag"
	"os"
	"path"
	"slices"

	"github.com/MuradHasanov07/Financial-App/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file may carry FINAPP_* variables and the Gemini API key.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "misc")
	cmd.Register(commander)

	completion(cmd.Names())

	flag.Parse()

	// Unknown subcommands may be provided by an external finapp-<name> binary.
	if sub := flag.Arg(0); sub != "" && !slices.Contains(cmd.Names(), sub) && sub != "help" {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion for the subcommands and global flags.
// It exits the process when invoked by the shell completion hook.
func completion(names []string) {
	sub := make(map[string]*complete.Command, len(names))
	for _, name := range names {
		sub[name] = &complete.Command{}
	}
	c := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"currency": predict.Set{"TRY", "USD", "EUR", "GBP"},
			"v":        predict.Nothing,
		},
	}
	c.Complete("finapp")
}
