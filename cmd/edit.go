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

type editCmd struct {
	typ         string
	category    string
	amount      string
	date        string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `finapp edit [-t <type>] [-c <category>] [-a <amount>] [-d <date>] [-m <description>] <id>

  Edits the transaction with the given id. Only the fields passed as flags are
  changed; everything else is left untouched.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "", "New transaction type (income, expense).")
	f.StringVar(&p.category, "c", "", "New category name.")
	f.StringVar(&p.amount, "a", "", "New amount in the ledger currency.")
	f.StringVar(&p.date, "d", "", "New transaction date.")
	f.StringVar(&p.description, "m", "", "New description.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var fields finance.TransactionUpdate
	if p.typ != "" {
		typ, err := finance.ParseTransactionType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		fields.Type = &typ
	}
	if p.category != "" {
		fields.Category = &p.category
	}
	if p.amount != "" {
		amount, err := decimal.NewFromString(p.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
			return subcommands.ExitUsageError
		}
		money := finance.M(amount, store.Currency())
		fields.Amount = &money
	}
	if p.date != "" {
		date, err := finance.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		fields.Date = &date
	}
	if p.description != "" {
		fields.Description = &p.description
	}

	found, err := store.Update(id, fields)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: transaction %q not found.\n", id)
		return subcommands.ExitFailure
	}

	tx, _ := store.Get(id)
	fmt.Printf("Updated: %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
