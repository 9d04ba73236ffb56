package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type dropCmd struct{}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "remove holdings from the portfolio" }
func (*dropCmd) Usage() string {
	return `finapp drop <id> [<id>...]

  Removes the holdings with the given ids from the portfolio, without recording
  a sale.
`
}

func (*dropCmd) SetFlags(f *flag.FlagSet) {}

func (p *dropCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one holding id.")
		return subcommands.ExitUsageError
	}

	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if !store.Delete(id) {
			fmt.Fprintf(os.Stderr, "Warning: holding %q not found.\n", id)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Removed holding %s\n", id)
	}
	return status
}
