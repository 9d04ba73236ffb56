// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/google/subcommands"
)

// names of the registered subcommands, used for shell completion and to
// decide when to try an external finapp-<subcommand> extension.
var names []string

// Names returns the names of all registered subcommands.
func Names() []string { return names }

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	c.Register(cmd, group)
	names = append(names, cmd.Name())
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	register(c, &addCmd{}, "transactions")
	register(c, &txCmd{}, "transactions")
	register(c, &editCmd{}, "transactions")
	register(c, &rmCmd{}, "transactions")
	register(c, &categoriesCmd{}, "transactions")

	register(c, &balanceCmd{}, "reports")
	register(c, &monthlyCmd{}, "reports")
	register(c, &statsCmd{}, "reports")
	register(c, &distributionCmd{}, "reports")
	register(c, &topCmd{}, "reports")

	register(c, &holdCmd{}, "portfolio")
	register(c, &portfolioCmd{}, "portfolio")
	register(c, &sellCmd{}, "portfolio")
	register(c, &dropCmd{}, "portfolio")
	register(c, &priceCmd{}, "portfolio")
	register(c, &fetchCmd{}, "portfolio")

	register(c, &budgetCmd{}, "budget")
	register(c, &demoCmd{}, "misc")
	register(c, &topicCmd{}, "misc")
	register(c, &assistCmd{}, "misc")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the folder holding the application data files")
var defaultCurrency = flag.String("currency", defaultCurrencyValue(), "Ledger currency for all amounts")
var Verbose = flag.Bool("v", false, "Enable verbose output")

func defaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finapp"
	}
	return filepath.Join(home, ".finapp")
}

func defaultCurrencyValue() string {
	if cur := os.Getenv(EnvCurrency); cur != "" {
		return cur
	}
	return "TRY"
}

// OpenStorage opens the app data folder, creating it on first use.
func OpenStorage() (*finance.Storage, error) {
	storage, err := finance.NewStorage(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("could not open data folder: %w", err)
	}
	return storage, nil
}

// OpenTransactions is the central function to open the transaction store.
func OpenTransactions() (*finance.TransactionStore, error) {
	storage, err := OpenStorage()
	if err != nil {
		return nil, err
	}
	return finance.NewTransactionStore(storage, *defaultCurrency), nil
}

// OpenAssets is the central function to open the portfolio store.
func OpenAssets() (*finance.AssetStore, error) {
	storage, err := OpenStorage()
	if err != nil {
		return nil, err
	}
	return finance.NewAssetStore(storage, *defaultCurrency), nil
}
