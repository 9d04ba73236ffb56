package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch live quotes into the price table" }
func (*fetchCmd) Usage() string {
	return `finapp fetch [<symbol>...]

  Fetches the latest unit prices from public quote services and upserts them
  into the price table, refreshing all holdings. Without arguments, fetches
  every symbol a provider is known for.
`
}

func (*fetchCmd) SetFlags(f *flag.FlagSet) {}

func (p *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = finance.QuotableSymbols()
	}
	for i := range symbols {
		symbols[i] = strings.ToUpper(symbols[i])
	}

	quotes, err := finance.FetchQuotes(store.Currency(), symbols)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	if len(quotes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no quotes could be fetched.")
		return subcommands.ExitFailure
	}

	store.UpdatePrices(quotes)
	for symbol, price := range quotes {
		fmt.Printf("%s marked at %s %s\n", symbol, price, store.Currency())
	}
	return subcommands.ExitSuccess
}
