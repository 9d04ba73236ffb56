package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/MuradHasanov07/Financial-App/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type holdCmd struct {
	name     string
	symbol   string
	typ      string
	quantity string
	price    string
	date     string
}

func (*holdCmd) Name() string     { return "hold" }
func (*holdCmd) Synopsis() string { return "record a new portfolio holding" }
func (*holdCmd) Usage() string {
	return `finapp hold -s <symbol> -t <crypto|stock|forex> -q <quantity> -p <unit_price> [-n <name>] [-d <date>]

  Records a new holding in the portfolio. The unit price is the purchase price
  in the ledger currency; the current value is derived from the price table.

Usage Examples:
# Bought 0.5 BTC at 40000.
$ finapp hold -s BTC -t crypto -q 0.5 -p 40000 -n Bitcoin

`
}

func (p *holdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Ticker symbol of the asset.")
	f.StringVar(&p.typ, "t", "", "Asset kind (crypto, stock, forex).")
	f.StringVar(&p.quantity, "q", "", "Quantity bought. Fractional quantities are allowed.")
	f.StringVar(&p.price, "p", "", "Unit purchase price in the ledger currency.")
	f.StringVar(&p.name, "n", "", "Display name (defaults to the symbol).")
	f.StringVar(&p.date, "d", "", "Purchase date (defaults to today).")
}

func (p *holdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finance.ParseAssetType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", p.quantity, err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", p.price, err)
		return subcommands.ExitUsageError
	}
	date, err := finance.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := p.name
	if name == "" {
		name = p.symbol
	}

	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, err := store.Add(finance.Asset{
		Name:          name,
		Symbol:        p.symbol,
		Type:          typ,
		Quantity:      finance.Q(quantity),
		PurchasePrice: finance.M(price, store.Currency()),
		UnitPrice:     finance.M(price, store.Currency()),
		PurchaseDate:  date,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s [%s]\n", renderer.Holding(a), a.ID)
	return subcommands.ExitSuccess
}
