package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadBudgetSettings_Default(t *testing.T) {
	settings := LoadBudgetSettings(newTestStorage(t))
	if !settings.MonthlyLimit.IsZero() {
		t.Errorf("default MonthlyLimit = %v, want 0", settings.MonthlyLimit)
	}
	if !settings.Enabled {
		t.Error("default budget check is not enabled")
	}
}

func TestBudgetSettings_RoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	want := BudgetSettings{MonthlyLimit: decimal.NewFromInt(5000), Enabled: false}
	if err := want.Save(storage); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := LoadBudgetSettings(storage)
	if !got.MonthlyLimit.Equal(want.MonthlyLimit) || got.Enabled != want.Enabled {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestBudgetSettings_Status(t *testing.T) {
	s := newTestTransactionStore(t)
	now := Today()
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(300, "TRY"), Date: now})
	s.Add(Transaction{Type: Expense, Category: "Bills", Amount: M(200, "TRY"), Date: now})
	// Previous months and income never count against the limit.
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(999, "TRY"), Date: now.AddMonth(-1).StartOfMonth()})
	s.Add(Transaction{Type: Income, Category: "Salary", Amount: M(1000, "TRY"), Date: now})

	settings := BudgetSettings{MonthlyLimit: decimal.NewFromInt(1000), Enabled: true}
	status := settings.Status(s)
	if !status.Spent.Equal(M(500, "TRY")) {
		t.Errorf("Spent = %v, want 500", status.Spent)
	}
	if !status.Remaining.Equal(M(500, "TRY")) {
		t.Errorf("Remaining = %v, want 500", status.Remaining)
	}
	if !status.Used.Equal(50) {
		t.Errorf("Used = %v, want 50%%", status.Used)
	}
	if status.OverLimit() {
		t.Error("OverLimit() = true at 50% usage")
	}
}

func TestBudgetSettings_OverLimit(t *testing.T) {
	s := newTestTransactionStore(t)
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(1200, "TRY"), Date: Today()})

	settings := BudgetSettings{MonthlyLimit: decimal.NewFromInt(1000), Enabled: true}
	status := settings.Status(s)
	if !status.OverLimit() {
		t.Error("OverLimit() = false at 120% usage")
	}
	if status.Remaining.IsPositive() {
		t.Errorf("Remaining = %v, want negative", status.Remaining)
	}

	// Disabling the check keeps the figures but drops the verdict.
	settings.Enabled = false
	if settings.Status(s).OverLimit() {
		t.Error("OverLimit() = true while disabled")
	}
}

func TestBudgetSettings_WouldExceed(t *testing.T) {
	s := newTestTransactionStore(t)
	s.Add(Transaction{Type: Expense, Category: "Food", Amount: M(900, "TRY"), Date: Today()})

	settings := BudgetSettings{MonthlyLimit: decimal.NewFromInt(1000), Enabled: true}
	if settings.WouldExceed(s, M(100, "TRY")) {
		t.Error("WouldExceed() = true when the expense exactly meets the limit")
	}
	if !settings.WouldExceed(s, M(101, "TRY")) {
		t.Error("WouldExceed() = false when the expense crosses the limit")
	}

	// Zero limit or disabled check always allows.
	if (BudgetSettings{Enabled: true}).WouldExceed(s, M(1, "TRY")) {
		t.Error("WouldExceed() = true with no limit configured")
	}
	settings.Enabled = false
	if settings.WouldExceed(s, M(10000, "TRY")) {
		t.Error("WouldExceed() = true while disabled")
	}
}
