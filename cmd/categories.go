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

type categoriesCmd struct {
	add   string
	typ   string
	icon  string
	color string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list or add transaction categories" }
func (*categoriesCmd) Usage() string {
	return `finapp categories [-add <name> -t <type> [-icon <icon>] [-color <color>]]

  Without flags, lists the known categories grouped by type. With -add, appends
  a new category. Categories cannot be edited or removed.
`
}

func (p *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Name of a new category to add.")
	f.StringVar(&p.typ, "t", "expense", "Type of the new category (income, expense).")
	f.StringVar(&p.icon, "icon", "category", "Icon of the new category.")
	f.StringVar(&p.color, "color", "#9E9E9E", "Display color of the new category.")
}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.add != "" {
		typ, err := finance.ParseTransactionType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		c := store.AddCategory(finance.Category{Name: p.add, Type: typ, Icon: p.icon, Color: p.color})
		fmt.Printf("Added category %q [%s]\n", c.Name, c.ID)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Categories(store.Categories()))
	return subcommands.ExitSuccess
}
