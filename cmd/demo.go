package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/subcommands"
)

type demoCmd struct {
	months int
	seed   int64
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "populate the ledger with generated demo data" }
func (*demoCmd) Usage() string {
	return `finapp demo [-n <months>] [-seed <n>]

  Fills the ledger and portfolio with plausible generated data, useful to try
  the reports on a fresh installation. Data is appended to whatever already
  exists.
`
}

func (p *demoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.months, "n", 6, "Number of months of history to generate.")
	f.Int64Var(&p.seed, "seed", 0, "Random seed for reproducible data. 0 uses a random one.")
}

func (p *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	faker := gofakeit.New(p.seed)

	txStore, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	assetStore, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	expenses := txStore.CategoriesByType(finance.Expense)
	added := 0
	for i := p.months - 1; i >= 0; i-- {
		month := finance.Today().AddMonth(-i).StartOfMonth()

		// One salary at the start of each month.
		if _, err := txStore.Add(finance.Transaction{
			Type:        finance.Income,
			Category:    "Salary",
			Amount:      finance.M(faker.Price(40000, 60000), txStore.Currency()),
			Date:        month,
			Description: faker.Company(),
		}); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		added++

		// A handful of expenses spread over the month.
		for j := 0; j < faker.Number(8, 15); j++ {
			category := expenses[faker.Number(0, len(expenses)-1)]
			if _, err := txStore.Add(finance.Transaction{
				Type:        finance.Expense,
				Category:    category.Name,
				Amount:      finance.M(faker.Price(50, 2500), txStore.Currency()),
				Date:        month.Add(faker.Number(0, 27)),
				Description: faker.ProductName(),
			}); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return subcommands.ExitFailure
			}
			added++
		}
	}

	holdings := []struct {
		symbol string
		typ    finance.AssetType
		max    float64
	}{
		{"BTC", finance.Crypto, 0.2},
		{"ETH", finance.Crypto, 3},
		{"THYAO", finance.Stock, 100},
		{"USD", finance.Forex, 2000},
	}
	for _, h := range holdings {
		quantity := faker.Float64Range(h.max/10, h.max)
		price := assetStore.CurrentPrice(h.symbol).InexactFloat64()
		// Purchase somewhere around the current price.
		purchase := faker.Float64Range(price*0.8, price*1.2)
		if _, err := assetStore.Add(finance.Asset{
			Name:          h.symbol,
			Symbol:        h.symbol,
			Type:          h.typ,
			Quantity:      finance.Q(quantity),
			PurchasePrice: finance.M(purchase, assetStore.Currency()),
			UnitPrice:     finance.M(purchase, assetStore.Currency()),
			PurchaseDate:  finance.Today().AddMonth(-faker.Number(1, p.months)),
		}); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Generated %d transactions and %d holdings over %d months.\n", added, len(holdings), p.months)
	return subcommands.ExitSuccess
}
