package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
)

type distributionCmd struct{}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "show the portfolio share per asset kind" }
func (*distributionCmd) Usage() string {
	return `finapp distribution

  Shows each asset kind's current value and its share of the total portfolio
  value.
`
}

func (*distributionCmd) SetFlags(f *flag.FlagSet) {}

func (p *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Distribution(store.Distribution()))
	return subcommands.ExitSuccess
}
