package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show or set unit prices in the price table" }
func (*priceCmd) Usage() string {
	return `finapp price [<symbol> [<value>]]

  Without arguments, shows the full price table. With a symbol, shows that
  symbol's price. With a symbol and a value, upserts the price and refreshes
  the current value of every holding of that symbol.

Usage Examples:
# Mark BTC at 50000.
$ finapp price BTC 50000

`
}

func (*priceCmd) SetFlags(f *flag.FlagSet) {}

func (p *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch f.NArg() {
	case 0:
		printMarkdown(renderer.Prices(store.Prices(), store.Currency()))
	case 1:
		symbol := strings.ToUpper(f.Arg(0))
		fmt.Printf("%s: %s %s\n", symbol, store.CurrentPrice(symbol), store.Currency())
	case 2:
		symbol := strings.ToUpper(f.Arg(0))
		price, err := decimal.NewFromString(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", f.Arg(1), err)
			return subcommands.ExitUsageError
		}
		store.UpdatePrice(symbol, price)
		fmt.Printf("%s marked at %s %s\n", symbol, price, store.Currency())
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most a symbol and a value.")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
