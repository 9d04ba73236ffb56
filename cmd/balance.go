package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the all-time income, expense and net balance" }
func (*balanceCmd) Usage() string {
	return `finapp balance

  Shows the total income, total expense and net balance over the full ledger.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Balance(store.Balance()))
	return subcommands.ExitSuccess
}
