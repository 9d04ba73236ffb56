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

type txCmd struct {
	typ      string
	category string
	start    string
	end      string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `finapp tx [-t <type>] [-c <category>] [-s <start_date>] [-e <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting
  the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "", "Only show transactions of this type (income, expense).")
	f.StringVar(&p.category, "c", "", "Only show transactions of this category.")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.end, "e", "", "The end date for the range (defaults to today).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions := store.Transactions()
	if p.start != "" || p.end != "" {
		start := finance.Date{}
		if p.start != "" {
			if start, err = finance.ParseDate(p.start); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		end, err := finance.ParseDate(p.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
		transactions = store.ByDateRange(start, end)
	}

	if p.typ != "" {
		typ, err := finance.ParseTransactionType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		transactions = filterTx(transactions, func(t finance.Transaction) bool { return t.Type == typ })
	}
	if p.category != "" {
		transactions = filterTx(transactions, func(t finance.Transaction) bool { return t.Category == p.category })
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}

func filterTx(txs []finance.Transaction, accept func(finance.Transaction) bool) []finance.Transaction {
	var out []finance.Transaction
	for _, t := range txs {
		if accept(t) {
			out = append(out, t)
		}
	}
	return out
}
