package finance

import (
	"testing"
	"time"
)

// newTestStorage returns a Storage rooted in a fresh temporary directory.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}
	return storage
}

func newTestTransactionStore(t *testing.T) *TransactionStore {
	t.Helper()
	return NewTransactionStore(newTestStorage(t), "TRY")
}

func mustAdd(t *testing.T, s *TransactionStore, typ TransactionType, category string, amount float64, date string) Transaction {
	t.Helper()
	tx, err := s.Add(Transaction{
		Type:     typ,
		Category: category,
		Amount:   M(amount, "TRY"),
		Date:     MustParseDate(date),
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return tx
}

func TestTransactionStore_Add(t *testing.T) {
	s := newTestTransactionStore(t)

	var published [][]Transaction
	cancel := s.Subscribe(func(txs []Transaction) { published = append(published, txs) })
	defer cancel()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		tx := mustAdd(t, s, Expense, "Food", 10, "2026-08-01")
		if tx.ID == "" {
			t.Fatal("Add() did not assign an identifier")
		}
		if seen[tx.ID] {
			t.Fatalf("Add() emitted duplicate identifier %q", tx.ID)
		}
		seen[tx.ID] = true

		// Every add publishes a collection exactly one longer than before.
		got := published[len(published)-1]
		if len(got) != i+1 {
			t.Fatalf("published collection length = %d, want %d", len(got), i+1)
		}
	}
}

func TestTransactionStore_AddValidates(t *testing.T) {
	s := newTestTransactionStore(t)

	testCases := []struct {
		name string
		tx   Transaction
	}{
		{name: "unknown type", tx: Transaction{Type: "loan", Category: "Food", Amount: M(10, "TRY")}},
		{name: "zero amount", tx: Transaction{Type: Expense, Category: "Food", Amount: M(0, "TRY")}},
		{name: "negative amount", tx: Transaction{Type: Expense, Category: "Food", Amount: M(-5, "TRY")}},
		{name: "missing category", tx: Transaction{Type: Expense, Amount: M(10, "TRY")}},
		{name: "foreign currency", tx: Transaction{Type: Expense, Category: "Food", Amount: M(10, "USD")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Add(tc.tx); err == nil {
				t.Error("Add() accepted an invalid transaction")
			}
		})
	}
	if got := len(s.Transactions()); got != 0 {
		t.Fatalf("collection length after rejected adds = %d, want 0", got)
	}
}

func TestTransactionStore_AddDefaultsDateToToday(t *testing.T) {
	s := newTestTransactionStore(t)
	tx, err := s.Add(Transaction{Type: Income, Category: "Salary", Amount: M(100, "TRY")})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if tx.Date != Today() {
		t.Errorf("Add() date = %v, want today", tx.Date)
	}
}

func TestTransactionStore_UpdateAbsentIsNoOp(t *testing.T) {
	s := newTestTransactionStore(t)
	mustAdd(t, s, Income, "Salary", 1000, "2026-08-01")
	before := s.Transactions()

	amount := M(5, "TRY")
	found, err := s.Update("no-such-id", TransactionUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if found {
		t.Error("Update() reported found for an absent id")
	}

	after := s.Transactions()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d != %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("transaction %d changed: %+v != %+v", i, after[i], before[i])
		}
	}
}

func TestTransactionStore_Update(t *testing.T) {
	s := newTestTransactionStore(t)
	tx := mustAdd(t, s, Expense, "Food", 50, "2026-08-02")

	amount := M(75, "TRY")
	category := "Bills"
	found, err := s.Update(tx.ID, TransactionUpdate{Amount: &amount, Category: &category})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !found {
		t.Fatal("Update() did not find the transaction")
	}

	got, ok := s.Get(tx.ID)
	if !ok {
		t.Fatal("Get() did not find the updated transaction")
	}
	if !got.Amount.Equal(amount) || got.Category != "Bills" {
		t.Errorf("updated transaction = %+v", got)
	}
	if got.Date != tx.Date || got.Type != tx.Type {
		t.Error("Update() touched fields that were not part of the update")
	}
}

func TestTransactionStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestTransactionStore(t)
	tx := mustAdd(t, s, Expense, "Food", 50, "2026-08-02")

	if !s.Delete(tx.ID) {
		t.Fatal("Delete() did not find the transaction")
	}
	if s.Delete(tx.ID) {
		t.Error("second Delete() reported a removal")
	}
	if got := len(s.Transactions()); got != 0 {
		t.Fatalf("collection length after delete = %d, want 0", got)
	}
}

func TestTransactionStore_RoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	s := NewTransactionStore(storage, "TRY")
	want := []Transaction{
		mustAdd(t, s, Income, "Salary", 1000.50, "2026-08-01"),
		mustAdd(t, s, Expense, "Food", 42.25, "2026-08-15"),
		mustAdd(t, s, Expense, "Food", 42.25, "2026-08-15"), // duplicates are allowed
	}

	// Simulate a restart: a new store over the same storage.
	reloaded := NewTransactionStore(storage, "TRY").Transactions()
	if len(reloaded) != len(want) {
		t.Fatalf("reloaded %d transactions, want %d", len(reloaded), len(want))
	}
	for i := range want {
		if reloaded[i].ID != want[i].ID ||
			reloaded[i].Type != want[i].Type ||
			reloaded[i].Category != want[i].Category ||
			reloaded[i].Date != want[i].Date ||
			!reloaded[i].Amount.Equal(want[i].Amount) {
			t.Errorf("transaction %d = %+v, want %+v", i, reloaded[i], want[i])
		}
	}
}

func TestTransactionStore_Queries(t *testing.T) {
	s := newTestTransactionStore(t)
	mustAdd(t, s, Income, "Salary", 1000, "2026-07-01")
	mustAdd(t, s, Expense, "Food", 100, "2026-07-15")
	mustAdd(t, s, Expense, "Food", 50, "2026-08-10")
	mustAdd(t, s, Expense, "Bills", 200, "2026-08-20")

	if got := len(s.ByType(Expense)); got != 3 {
		t.Errorf("ByType(expense) returned %d, want 3", got)
	}
	if got := len(s.ByCategory("Food")); got != 2 {
		t.Errorf("ByCategory(Food) returned %d, want 2", got)
	}
	if got := len(s.ByDateRange(MustParseDate("2026-07-15"), MustParseDate("2026-08-10"))); got != 2 {
		t.Errorf("ByDateRange() returned %d, want 2", got)
	}
	if got := len(s.ByMonth(2026, time.August)); got != 2 {
		t.Errorf("ByMonth(2026, August) returned %d, want 2", got)
	}
}

func TestTransactionStore_Balance(t *testing.T) {
	s := newTestTransactionStore(t)
	mustAdd(t, s, Income, "Salary", 1000, "2026-08-01")
	mustAdd(t, s, Expense, "Food", 400, "2026-08-02")

	b := s.Balance()
	if !b.TotalIncome.Equal(M(1000, "TRY")) {
		t.Errorf("TotalIncome = %v, want 1000", b.TotalIncome)
	}
	if !b.TotalExpense.Equal(M(400, "TRY")) {
		t.Errorf("TotalExpense = %v, want 400", b.TotalExpense)
	}
	if !b.NetBalance.Equal(M(600, "TRY")) {
		t.Errorf("NetBalance = %v, want 600", b.NetBalance)
	}
}

func TestTransactionStore_MonthlyBalancesEmpty(t *testing.T) {
	s := newTestTransactionStore(t)

	balances := s.MonthlyBalances(3)
	if len(balances) != 3 {
		t.Fatalf("MonthlyBalances(3) returned %d entries, want 3", len(balances))
	}
	for i, b := range balances {
		if !b.Income.IsZero() || !b.Expense.IsZero() || !b.Balance.IsZero() {
			t.Errorf("entry %d is not zero-filled: %+v", i, b)
		}
	}
	// Oldest first, ending at the current month.
	if want := Today().MonthLabel(); balances[2].Month != want {
		t.Errorf("last entry month = %q, want %q", balances[2].Month, want)
	}
	if want := Today().StartOfMonth().AddMonth(-2).MonthLabel(); balances[0].Month != want {
		t.Errorf("first entry month = %q, want %q", balances[0].Month, want)
	}
}

func TestTransactionStore_MonthlyBalances(t *testing.T) {
	s := newTestTransactionStore(t)
	now := Today()
	s.Add(Transaction{Type: Income, Category: "Salary", Amount: M(1000, "TRY"), Date: now})
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(300, "TRY"), Date: now})
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(80, "TRY"), Date: now.StartOfMonth().AddMonth(-1)})

	balances := s.MonthlyBalances(2)
	if len(balances) != 2 {
		t.Fatalf("MonthlyBalances(2) returned %d entries, want 2", len(balances))
	}
	if !balances[0].Expense.Equal(M(80, "TRY")) || !balances[0].Income.IsZero() {
		t.Errorf("previous month = %+v", balances[0])
	}
	if !balances[1].Balance.Equal(M(700, "TRY")) {
		t.Errorf("current month balance = %v, want 700", balances[1].Balance)
	}
}

func TestTransactionStore_CategoryStats(t *testing.T) {
	s := newTestTransactionStore(t)
	mustAdd(t, s, Expense, "Food", 100, "2026-08-01")
	mustAdd(t, s, Expense, "Bills", 200, "2026-08-02")
	mustAdd(t, s, Expense, "Food", 50, "2026-08-03")
	mustAdd(t, s, Income, "Salary", 1000, "2026-08-04")

	stats := s.CategoryStats(Expense)
	if len(stats) != 2 {
		t.Fatalf("CategoryStats(expense) returned %d entries, want 2", len(stats))
	}
	// First-seen category order.
	if stats[0].Category != "Food" || stats[1].Category != "Bills" {
		t.Errorf("category order = %q, %q", stats[0].Category, stats[1].Category)
	}
	if !stats[0].Amount.Equal(M(150, "TRY")) || stats[0].Count != 2 {
		t.Errorf("Food stats = %+v", stats[0])
	}
	if !stats[1].Amount.Equal(M(200, "TRY")) || stats[1].Count != 1 {
		t.Errorf("Bills stats = %+v", stats[1])
	}
}

func TestTransactionStore_SeedsDefaultCategories(t *testing.T) {
	s := newTestTransactionStore(t)
	categories := s.Categories()
	if len(categories) != len(DefaultCategories()) {
		t.Fatalf("seeded %d categories, want %d", len(categories), len(DefaultCategories()))
	}
	if got := len(s.CategoriesByType(Income)); got != 4 {
		t.Errorf("CategoriesByType(income) returned %d, want 4", got)
	}
}

func TestTransactionStore_AddCategoryPersists(t *testing.T) {
	storage := newTestStorage(t)
	s := NewTransactionStore(storage, "TRY")
	added := s.AddCategory(Category{Name: "Pets", Type: Expense, Icon: "pets", Color: "#795548"})
	if added.ID == "" {
		t.Fatal("AddCategory() did not assign an identifier")
	}

	reloaded := NewTransactionStore(storage, "TRY")
	categories := reloaded.Categories()
	last := categories[len(categories)-1]
	if last.Name != "Pets" || last.ID != added.ID {
		t.Errorf("reloaded category = %+v, want %+v", last, added)
	}
}
