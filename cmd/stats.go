package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	typ string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show per-category totals" }
func (*statsCmd) Usage() string {
	return `finapp stats [-t <income|expense>]

  Shows the summed amount and transaction count per category for one
  transaction type. Defaults to expenses.
`
}

func (p *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "expense", "Transaction type to report on (income, expense).")
}

func (p *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finance.ParseTransactionType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CategoryStats(typ, store.CategoryStats(typ)))
	return subcommands.ExitSuccess
}
