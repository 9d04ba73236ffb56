package cmd

import (
	"flag"
	"testing"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/google/subcommands"
)

// setupApp points the global data folder at a fresh temporary directory.
func setupApp(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func emptyArgs(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestAddCmd(t *testing.T) {
	setupApp(t)

	add := &addCmd{typ: "expense", category: "Food", amount: "250.50", description: "groceries"}
	if status := add.Execute(t.Context(), emptyArgs(t)); status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}

	store, err := OpenTransactions()
	if err != nil {
		t.Fatal(err)
	}
	txs := store.Transactions()
	if len(txs) != 1 {
		t.Fatalf("recorded %d transactions, want 1", len(txs))
	}
	if txs[0].Category != "Food" || !txs[0].Amount.Equal(finance.M(250.50, "TRY")) {
		t.Errorf("recorded transaction = %+v", txs[0])
	}
	if txs[0].Date != finance.Today() {
		t.Errorf("date = %v, want today", txs[0].Date)
	}
}

func TestAddCmd_RejectsBadInput(t *testing.T) {
	setupApp(t)

	testCases := []struct {
		name string
		cmd  *addCmd
	}{
		{name: "bad type", cmd: &addCmd{typ: "loan", category: "Food", amount: "10"}},
		{name: "bad amount", cmd: &addCmd{typ: "expense", category: "Food", amount: "ten"}},
		{name: "bad date", cmd: &addCmd{typ: "expense", category: "Food", amount: "10", date: "someday"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := tc.cmd.Execute(t.Context(), emptyArgs(t)); status == subcommands.ExitSuccess {
				t.Error("command did not fail")
			}
		})
	}
}

func TestRmCmd(t *testing.T) {
	setupApp(t)

	store, err := OpenTransactions()
	if err != nil {
		t.Fatal(err)
	}
	tx, err := store.Add(finance.Transaction{Type: finance.Income, Category: "Salary", Amount: finance.M(100, "TRY")})
	if err != nil {
		t.Fatal(err)
	}

	rm := &rmCmd{}
	if status := rm.Execute(t.Context(), emptyArgs(t, tx.ID)); status != subcommands.ExitSuccess {
		t.Fatalf("rm exited with %v", status)
	}
	if status := rm.Execute(t.Context(), emptyArgs(t, tx.ID)); status == subcommands.ExitSuccess {
		t.Error("removing an absent id did not fail")
	}
}

func TestPriceCmd_SetRefreshesHoldings(t *testing.T) {
	setupApp(t)

	store, err := OpenAssets()
	if err != nil {
		t.Fatal(err)
	}
	a, err := store.Add(finance.Asset{
		Symbol: "BTC", Name: "Bitcoin", Type: finance.Crypto,
		Quantity: finance.Q(0.5), PurchasePrice: finance.M(40000, "TRY"),
	})
	if err != nil {
		t.Fatal(err)
	}

	price := &priceCmd{}
	if status := price.Execute(t.Context(), emptyArgs(t, "btc", "50000")); status != subcommands.ExitSuccess {
		t.Fatalf("price exited with %v", status)
	}

	// The command and the test hold separate stores over the same folder.
	reloaded, err := OpenAssets()
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reloaded.Get(a.ID)
	if !ok {
		t.Fatal("holding vanished")
	}
	if !got.CurrentValue.Equal(finance.M(25000, "TRY")) {
		t.Errorf("CurrentValue = %v, want 25000", got.CurrentValue)
	}
}

func TestRegisterNames(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("finapp", flag.ContinueOnError), "finapp")
	Register(commander)

	for _, want := range []string{"add", "tx", "balance", "portfolio", "budget", "fetch", "assist"} {
		found := false
		for _, name := range Names() {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q is not registered", want)
		}
	}
}
