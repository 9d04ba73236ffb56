package finance

import (
	"errors"
	"fmt"
)

// TransactionType is a typed string for the two kinds of cash-flow records.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single recorded income or expense event.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (a zero date resolves to today, a missing currency to the store's).
// It returns the validated (and potentially modified) transaction or an error.
func (t Transaction) Validate(currency string) (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return t, err
	}
	if t.Category == "" {
		return t, errors.New("transaction category is missing")
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.Amount(), currency)
	} else if t.Amount.Currency() != currency {
		return t, fmt.Errorf("transaction currency %s does not match the ledger currency %s", t.Amount.Currency(), currency)
	}
	return t, nil
}

// TransactionUpdate carries the partial fields of an update. Nil fields are
// left untouched on the existing record.
type TransactionUpdate struct {
	Type        *TransactionType
	Category    *string
	Amount      *Money
	Date        *Date
	Description *string
}

func (u TransactionUpdate) apply(t Transaction) Transaction {
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	return t
}

// Category describes a transaction category.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
}

// DefaultCategories returns the built-in category set seeded on first load.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Salary", Type: Income, Icon: "work", Color: "#4CAF50"},
		{ID: "2", Name: "Bonus", Type: Income, Icon: "card_giftcard", Color: "#8BC34A"},
		{ID: "3", Name: "Freelance", Type: Income, Icon: "laptop", Color: "#CDDC39"},
		{ID: "4", Name: "Investment Income", Type: Income, Icon: "trending_up", Color: "#FFC107"},

		{ID: "5", Name: "Food", Type: Expense, Icon: "restaurant", Color: "#FF5722"},
		{ID: "6", Name: "Transport", Type: Expense, Icon: "directions_car", Color: "#E91E63"},
		{ID: "7", Name: "Bills", Type: Expense, Icon: "receipt", Color: "#9C27B0"},
		{ID: "8", Name: "Shopping", Type: Expense, Icon: "shopping_cart", Color: "#673AB7"},
		{ID: "9", Name: "Entertainment", Type: Expense, Icon: "movie", Color: "#3F51B5"},
		{ID: "10", Name: "Health", Type: Expense, Icon: "local_hospital", Color: "#2196F3"},
		{ID: "11", Name: "Education", Type: Expense, Icon: "school", Color: "#00BCD4"},
		{ID: "12", Name: "Other", Type: Expense, Icon: "more_horiz", Color: "#607D8B"},
	}
}

// Balance is the aggregate of total income, total expense and their difference
// over a transaction set.
type Balance struct {
	TotalIncome  Money
	TotalExpense Money
	NetBalance   Money
}

// MonthlyBalance is the balance of one calendar month.
type MonthlyBalance struct {
	Month   string // human readable month label
	Income  Money
	Expense Money
	Balance Money
}

// CategoryStat is the per-category aggregate of one transaction type.
type CategoryStat struct {
	Category string
	Amount   Money
	Count    int
}
