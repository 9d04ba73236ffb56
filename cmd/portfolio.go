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

type portfolioCmd struct {
	typ string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list portfolio holdings and totals" }
func (*portfolioCmd) Usage() string {
	return `finapp portfolio [-t <crypto|stock|forex>]

  Lists all holdings with their current value and profit figures, followed by
  the portfolio totals.
`
}

func (p *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "", "Only show holdings of this kind.")
}

func (p *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	assets := store.Assets()
	if p.typ != "" {
		typ, err := finance.ParseAssetType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		assets = store.ByType(typ)
	}

	printMarkdown(renderer.Portfolio(assets,
		store.TotalPortfolioValue(),
		store.TotalInvestment(),
		store.TotalProfitLoss(),
		store.TotalProfitLossPercent()))
	return subcommands.ExitSuccess
}
