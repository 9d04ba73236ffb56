package finance

import (
	"github.com/shopspring/decimal"
)

// BudgetSettings is the single, unversioned monthly spending limit.
// It defaults to a zero limit with the check enabled when never configured.
type BudgetSettings struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	Enabled      bool            `json:"isEnabled"`
}

// LoadBudgetSettings reads the budget settings from storage, falling back to
// the default when absent.
func LoadBudgetSettings(storage *Storage) BudgetSettings {
	settings := BudgetSettings{Enabled: true}
	storage.Get(KeyBudgetSettings, &settings)
	return settings
}

// Save persists the budget settings.
func (b BudgetSettings) Save(storage *Storage) error {
	return storage.Set(KeyBudgetSettings, b)
}

// BudgetStatus is the advisory view of the current month's spending against
// the configured limit.
type BudgetStatus struct {
	Enabled   bool
	Limit     Money
	Spent     Money // this month's expense total
	Remaining Money
	Used      Percent
}

// OverLimit reports whether the month's spending exceeds the configured limit.
func (s BudgetStatus) OverLimit() bool {
	return s.Enabled && s.Limit.IsPositive() && s.Limit.LessThan(s.Spent)
}

// Status computes the advisory budget status for the current month. The check
// is a soft gate performed before recording new expenses; the transaction
// store itself never enforces it.
func (b BudgetSettings) Status(store *TransactionStore) BudgetStatus {
	now := Today()
	spent := balanceOf(store.ByMonth(now.Year(), now.Month()), store.Currency()).TotalExpense
	limit := M(b.MonthlyLimit, store.Currency())
	return BudgetStatus{
		Enabled:   b.Enabled,
		Limit:     limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
		Used:      spent.PercentOf(limit),
	}
}

// WouldExceed reports whether recording one more expense of the given amount
// would push the current month over the limit. It always allows when the
// check is disabled or no limit is configured.
func (b BudgetSettings) WouldExceed(store *TransactionStore, amount Money) bool {
	if !b.Enabled || !b.MonthlyLimit.IsPositive() {
		return false
	}
	status := b.Status(store)
	return status.Limit.LessThan(status.Spent.Add(amount))
}
