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

type addCmd struct {
	typ         string
	category    string
	amount      string
	date        string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `finapp add -t <income|expense> -c <category> -a <amount> [-d <date>] [-m <description>]

  Records a transaction in the ledger. The date defaults to today. When a
  monthly budget is configured, an expense that pushes the month over the
  limit is still recorded, but a warning is printed.

Usage Examples:
# Record today's groceries.
$ finapp add -t expense -c Food -a 250.50 -m "weekly groceries"

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "expense", "Transaction type (income, expense).")
	f.StringVar(&p.category, "c", "", "Category name.")
	f.StringVar(&p.amount, "a", "", "Amount in the ledger currency.")
	f.StringVar(&p.date, "d", "", "Transaction date (defaults to today).")
	f.StringVar(&p.description, "m", "", "Free-form description.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finance.ParseTransactionType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}
	date, err := finance.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	money := finance.M(amount, store.Currency())
	settings := finance.LoadBudgetSettings(store.Storage())
	if typ == finance.Expense && date.SameMonth(finance.Today()) && settings.WouldExceed(store, money) {
		fmt.Fprintln(os.Stderr, "Warning: this expense puts you over your monthly budget.")
	}

	tx, err := store.Add(finance.Transaction{
		Type:        typ,
		Category:    p.category,
		Amount:      money,
		Date:        date,
		Description: p.description,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s [%s]\n", renderer.Transaction(tx), tx.ID)
	return subcommands.ExitSuccess
}
