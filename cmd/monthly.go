package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	months int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "show per-month income and expense totals" }
func (*monthlyCmd) Usage() string {
	return `finapp monthly [-n <months>]

  Shows income, expense and balance for the last N calendar months including
  the current one, oldest first. Months without transactions show zero rows.
`
}

func (p *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.months, "n", 6, "Number of months to report on.")
}

func (p *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.months <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be positive.")
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MonthlyBalances(store.MonthlyBalances(p.months)))
	return subcommands.ExitSuccess
}
