package renderer

import (
	"fmt"
	"strings"

	finance "github.com/MuradHasanov07/Financial-App"
)

// Transaction renders a one-line description of a transaction.
func Transaction(tx finance.Transaction) string {
	switch tx.Type {
	case finance.Income:
		return fmt.Sprintf("Received %s as %s", tx.Amount, tx.Category)
	case finance.Expense:
		return fmt.Sprintf("Spent %s on %s", tx.Amount, tx.Category)
	default:
		return fmt.Sprintf("%s %s (%s)", tx.Type, tx.Amount, tx.Category)
	}
}

// Transactions renders the transaction list as a markdown table.
func Transactions(txs []finance.Transaction) string {
	var b strings.Builder
	title(&b, "Transactions")
	if len(txs) == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}

	t := &table{}
	t.Header("Date", "Type", "Category", "Amount", "Description", "ID")
	for _, tx := range txs {
		amount := tx.Amount.String()
		if tx.Type == finance.Expense {
			amount = tx.Amount.Neg().String()
		}
		t.Row(tx.Date.String(), string(tx.Type), tx.Category, amount, tx.Description, tx.ID)
	}
	b.WriteString(t.String())
	return b.String()
}

// Balance renders the all-time balance summary.
func Balance(b finance.Balance) string {
	var sb strings.Builder
	title(&sb, "Balance")
	t := &table{}
	t.Header("", "Amount")
	t.Row("Total Income", b.TotalIncome.String())
	t.Row("Total Expense", b.TotalExpense.String())
	t.Row("**Net Balance**", "**"+b.NetBalance.String()+"**")
	sb.WriteString(t.String())
	return sb.String()
}

// MonthlyBalances renders the per-month income and expense table, oldest first.
func MonthlyBalances(balances []finance.MonthlyBalance) string {
	var b strings.Builder
	title(&b, "Monthly Balance")
	t := &table{}
	t.Header("Month", "Income", "Expense", "Balance")
	for _, m := range balances {
		t.Row(m.Month, m.Income.String(), m.Expense.String(), m.Balance.SignedString())
	}
	b.WriteString(t.String())
	return b.String()
}

// CategoryStats renders the per-category totals for one transaction type.
func CategoryStats(typ finance.TransactionType, stats []finance.CategoryStat) string {
	var b strings.Builder
	title(&b, "%s by Category", titleCase(string(typ)))
	if len(stats) == 0 {
		fmt.Fprintf(&b, "No %s recorded.\n", typ)
		return b.String()
	}
	t := &table{}
	t.Header("Category", "Amount", "Count")
	for _, s := range stats {
		t.Row(s.Category, s.Amount.String(), fmt.Sprintf("%d", s.Count))
	}
	b.WriteString(t.String())
	return b.String()
}

// Categories renders the known categories grouped by transaction type.
func Categories(categories []finance.Category) string {
	var b strings.Builder
	title(&b, "Categories")
	for _, typ := range []finance.TransactionType{finance.Income, finance.Expense} {
		section(&b, "%s", titleCase(string(typ)))
		t := &table{}
		t.Header("Name", "Icon", "Color", "ID")
		for _, c := range categories {
			if c.Type == typ {
				t.Row(c.Name, c.Icon, c.Color, c.ID)
			}
		}
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	return b.String()
}
