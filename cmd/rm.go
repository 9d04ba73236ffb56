package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove transactions from the ledger" }
func (*rmCmd) Usage() string {
	return `finapp rm <id> [<id>...]

  Removes the transactions with the given ids from the ledger.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one transaction id.")
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if !store.Delete(id) {
			fmt.Fprintf(os.Stderr, "Warning: transaction %q not found.\n", id)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Removed transaction %s\n", id)
	}
	return status
}
