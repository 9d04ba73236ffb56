package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
)

type topCmd struct {
	limit int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank holdings by profit percentage" }
func (*topCmd) Usage() string {
	return `finapp top [-n <limit>]

  Ranks holdings by profit percentage, highest first.
`
}

func (p *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "n", 5, "Number of holdings to show. 0 shows all.")
}

func (p *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TopPerformers(store.TopPerformers(p.limit)))
	return subcommands.ExitSuccess
}
