package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sellCmd struct {
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell part or all of a holding" }
func (*sellCmd) Usage() string {
	return `finapp sell -q <quantity> <id>

  Decrements the quantity of the holding with the given id. Selling the full
  position removes the holding. Selling more than the position holds is an
  error.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.quantity, "q", "", "Quantity to sell.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one holding id.")
		return subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", p.quantity, err)
		return subcommands.ExitUsageError
	}

	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	held, _ := store.Get(id)
	if err := store.Sell(id, finance.Q(quantity)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if _, ok := store.Get(id); !ok {
		fmt.Printf("Sold the full %s position.\n", held.Symbol)
	} else {
		fmt.Printf("Sold %s of %s.\n", quantity, held.Symbol)
	}
	return subcommands.ExitSuccess
}
