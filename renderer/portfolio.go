package renderer

import (
	"fmt"
	"sort"
	"strings"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/shopspring/decimal"
)

// Holding renders a one-line description of a portfolio holding.
func Holding(a finance.Asset) string {
	return fmt.Sprintf("%s %s (%s) worth %s", a.Quantity, a.Symbol, a.Type, a.CurrentValue)
}

// Portfolio renders the holdings table followed by the portfolio totals.
func Portfolio(assets []finance.Asset, value, investment, profit finance.Money, profitPercent finance.Percent) string {
	var b strings.Builder
	title(&b, "Portfolio")
	if len(assets) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}

	t := &table{}
	t.Header("Symbol", "Name", "Type", "Quantity", "Buy Price", "Value", "P/L", "P/L %", "ID")
	for _, a := range assets {
		t.Row(a.Symbol, a.Name, string(a.Type), a.Quantity.String(),
			a.PurchasePrice.String(), a.CurrentValue.String(),
			a.ProfitLoss().SignedString(), a.ProfitLossPercent().SignedString(), a.ID)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	section(&b, "Summary")
	s := &table{}
	s.Header("", "Amount")
	s.Row("Total Value", value.String())
	s.Row("Total Investment", investment.String())
	s.Row("**Profit/Loss**", fmt.Sprintf("**%s (%s)**", profit.SignedString(), profitPercent.SignedString()))
	b.WriteString(s.String())
	return b.String()
}

// Distribution renders the portfolio share per asset kind.
func Distribution(dist []finance.Distribution) string {
	var b strings.Builder
	title(&b, "Portfolio Distribution")
	if len(dist) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}
	t := &table{}
	t.Header("Kind", "Value", "Share")
	for _, d := range dist {
		name := string(d.Type)
		if info, ok := finance.AssetKind(d.Type); ok {
			name = info.Name
		}
		t.Row(name, d.Value.String(), d.Percentage.String())
	}
	b.WriteString(t.String())
	return b.String()
}

// TopPerformers renders the profit ranking of the holdings.
func TopPerformers(performers []finance.Performance) string {
	var b strings.Builder
	title(&b, "Top Performers")
	if len(performers) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}
	t := &table{}
	t.Header("#", "Symbol", "Name", "P/L", "P/L %")
	for i, p := range performers {
		t.Row(fmt.Sprintf("%d", i+1), p.Symbol, p.Name,
			p.ProfitLoss.SignedString(), p.ProfitLossPercent.SignedString())
	}
	b.WriteString(t.String())
	return b.String()
}

// Prices renders the price table, symbols in alphabetical order.
func Prices(prices map[string]decimal.Decimal, currency string) string {
	var b strings.Builder
	title(&b, "Prices (%s)", currency)
	symbols := make([]string, 0, len(prices))
	for s := range prices {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	t := &table{}
	t.Header("Symbol", "Unit Price")
	for _, s := range symbols {
		t.Row(s, prices[s].String())
	}
	b.WriteString(t.String())
	return b.String()
}

// BudgetStatus renders the advisory budget report for the current month.
func BudgetStatus(s finance.BudgetStatus) string {
	var b strings.Builder
	title(&b, "Monthly Budget")
	if !s.Enabled {
		b.WriteString("Budget check is disabled.\n")
		return b.String()
	}
	if !s.Limit.IsPositive() {
		b.WriteString("No monthly limit configured.\n")
		return b.String()
	}
	t := &table{}
	t.Header("", "Amount")
	t.Row("Limit", s.Limit.String())
	t.Row("Spent", s.Spent.String())
	t.Row("Remaining", s.Remaining.SignedString())
	t.Row("Used", s.Used.String())
	b.WriteString(t.String())
	if s.OverLimit() {
		b.WriteString("\n**You are over your monthly budget.**\n")
	}
	return b.String()
}
