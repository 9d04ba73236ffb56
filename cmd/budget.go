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

type budgetCmd struct {
	limit   string
	enable  bool
	disable bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or configure the monthly budget" }
func (*budgetCmd) Usage() string {
	return `finapp budget [-limit <amount>] [-enable | -disable]

  Without flags, shows this month's spending against the configured limit.
  The budget is advisory: it warns when recording expenses but never blocks
  them.

Usage Examples:
# Limit spending to 15000 a month.
$ finapp budget -limit 15000

`
}

func (p *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.limit, "limit", "", "Monthly spending limit in the ledger currency.")
	f.BoolVar(&p.enable, "enable", false, "Enable the budget check.")
	f.BoolVar(&p.disable, "disable", false, "Disable the budget check.")
}

func (p *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.enable && p.disable {
		fmt.Fprintln(os.Stderr, "Error: -enable and -disable flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settings := finance.LoadBudgetSettings(store.Storage())

	if p.limit != "" || p.enable || p.disable {
		if p.limit != "" {
			limit, err := decimal.NewFromString(p.limit)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing limit %q: %v\n", p.limit, err)
				return subcommands.ExitUsageError
			}
			if limit.IsNegative() {
				fmt.Fprintln(os.Stderr, "Error: the limit cannot be negative.")
				return subcommands.ExitUsageError
			}
			settings.MonthlyLimit = limit
		}
		if p.enable {
			settings.Enabled = true
		}
		if p.disable {
			settings.Enabled = false
		}
		if err := settings.Save(store.Storage()); err != nil {
			fmt.Fprintln(os.Stderr, "Error saving budget settings:", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.BudgetStatus(settings.Status(store)))
	return subcommands.ExitSuccess
}
