package finance

import (
	"log"
	"slices"
	"sync"
	"time"
)

// TransactionStore owns the list of transactions and the list of transaction
// categories. It exposes both as observable streams, and provides CRUD and
// aggregation operations over them.
//
// Every mutation builds a new collection value, replaces the held one,
// notifies subscribers and then persists. The in-memory state stays
// authoritative when persistence fails; the failure is only logged.
type TransactionStore struct {
	mu       sync.Mutex
	storage  *Storage
	currency string

	transactions []Transaction
	categories   []Category

	stream     *Stream[[]Transaction]
	catsStream *Stream[[]Category]
}

// NewTransactionStore loads persisted transactions and categories from
// storage and returns a ready store. The default category set is seeded when
// no categories were ever persisted.
func NewTransactionStore(storage *Storage, currency string) *TransactionStore {
	s := &TransactionStore{storage: storage, currency: currency}

	var transactions []Transaction
	storage.Get(KeyTransactions, &transactions)
	s.transactions = transactions

	var categories []Category
	if !storage.Get(KeyCategories, &categories) || len(categories) == 0 {
		categories = DefaultCategories()
	}
	s.categories = categories

	s.stream = NewStream(slices.Clone(s.transactions))
	s.catsStream = NewStream(slices.Clone(s.categories))
	return s
}

// Currency returns the ledger currency of this store.
func (s *TransactionStore) Currency() string { return s.currency }

// Storage returns the storage backing this store.
func (s *TransactionStore) Storage() *Storage { return s.storage }

// Transactions returns a snapshot of the current collection.
func (s *TransactionStore) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.transactions)
}

// Subscribe registers fn on the transaction stream. fn immediately receives
// the current collection, then every subsequent one.
func (s *TransactionStore) Subscribe(fn func([]Transaction)) (cancel func()) {
	return s.stream.Subscribe(fn)
}

// SubscribeCategories registers fn on the category stream.
func (s *TransactionStore) SubscribeCategories(fn func([]Category)) (cancel func()) {
	return s.catsStream.Subscribe(fn)
}

// publish pushes the current collection to subscribers and persists it.
func (s *TransactionStore) publish() {
	s.mu.Lock()
	snapshot := slices.Clone(s.transactions)
	s.mu.Unlock()

	s.stream.Publish(snapshot)
	if err := s.storage.Set(KeyTransactions, snapshot); err != nil {
		log.Printf("warning: could not persist transactions: %v", err)
	}
}

// Add validates the transaction, assigns it a new identifier, appends it to
// the collection, publishes and persists. It returns the stored transaction.
func (s *TransactionStore) Add(tx Transaction) (Transaction, error) {
	tx, err := tx.Validate(s.currency)
	if err != nil {
		return tx, err
	}
	tx.ID = NewID()

	s.mu.Lock()
	s.transactions = append(slices.Clone(s.transactions), tx)
	s.mu.Unlock()

	s.publish()
	return tx, nil
}

// Update merges the given fields into the transaction with this id, then
// publishes and persists. It reports whether the id was found; updating an
// absent id leaves the collection untouched.
func (s *TransactionStore) Update(id string, fields TransactionUpdate) (bool, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	merged, err := fields.apply(s.transactions[i]).Validate(s.currency)
	if err != nil {
		s.mu.Unlock()
		return true, err
	}
	merged.ID = id
	txs := slices.Clone(s.transactions)
	txs[i] = merged
	s.transactions = txs
	s.mu.Unlock()

	s.publish()
	return true, nil
}

// Delete removes the transaction with this id. Deleting an absent id is an
// idempotent no-op; the return value reports whether a record was removed.
func (s *TransactionStore) Delete(id string) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.transactions = slices.Delete(slices.Clone(s.transactions), i, i+1)
	s.mu.Unlock()

	s.publish()
	return true
}

// Get returns the transaction with this id.
func (s *TransactionStore) Get(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return Transaction{}, false
	}
	return s.transactions[i], true
}

// filter returns the transactions accepted by the predicate.
func (s *TransactionStore) filter(accept func(Transaction) bool) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Transaction
	for _, t := range s.transactions {
		if accept(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByType returns all transactions of the given type.
func (s *TransactionStore) ByType(typ TransactionType) []Transaction {
	return s.filter(func(t Transaction) bool { return t.Type == typ })
}

// ByCategory returns all transactions recorded under the given category.
func (s *TransactionStore) ByCategory(category string) []Transaction {
	return s.filter(func(t Transaction) bool { return t.Category == category })
}

// ByDateRange returns all transactions dated within [from, to], inclusive.
func (s *TransactionStore) ByDateRange(from, to Date) []Transaction {
	return s.filter(func(t Transaction) bool {
		return !t.Date.Before(from) && !t.Date.After(to)
	})
}

// ByMonth returns all transactions of the given calendar month.
func (s *TransactionStore) ByMonth(year int, month time.Month) []Transaction {
	return s.filter(func(t Transaction) bool {
		return t.Date.Year() == year && t.Date.Month() == month
	})
}

// Balance computes the aggregate income, expense and net balance over the full
// collection. It is recomputed from scratch on every call.
func (s *TransactionStore) Balance() Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return balanceOf(s.transactions, s.currency)
}

func balanceOf(txs []Transaction, currency string) Balance {
	income, expense := M(0, currency), M(0, currency)
	for _, t := range txs {
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return Balance{
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
	}
}

// MonthlyBalances produces the last n calendar months including the current
// one, oldest first. Months without transactions yield zero rows rather than
// being omitted.
func (s *TransactionStore) MonthlyBalances(n int) []MonthlyBalance {
	balances := make([]MonthlyBalance, 0, n)
	// Truncate to the first of the month before shifting: stepping back from
	// a day past the 28th would otherwise normalize into the wrong month.
	current := Today().StartOfMonth()
	for i := n - 1; i >= 0; i-- {
		month := current.AddMonth(-i)
		b := balanceOf(s.ByMonth(month.Year(), month.Month()), s.currency)
		balances = append(balances, MonthlyBalance{
			Month:   month.MonthLabel(),
			Income:  b.TotalIncome,
			Expense: b.TotalExpense,
			Balance: b.NetBalance,
		})
	}
	return balances
}

// CategoryStats groups transactions of the given type by category, returning
// each category's summed amount and count in first-seen order.
func (s *TransactionStore) CategoryStats(typ TransactionType) []CategoryStat {
	var stats []CategoryStat
	index := make(map[string]int)
	for _, t := range s.ByType(typ) {
		i, ok := index[t.Category]
		if !ok {
			i = len(stats)
			index[t.Category] = i
			stats = append(stats, CategoryStat{Category: t.Category, Amount: M(0, s.currency)})
		}
		stats[i].Amount = stats[i].Amount.Add(t.Amount)
		stats[i].Count++
	}
	return stats
}

// Categories returns a snapshot of the current category list.
func (s *TransactionStore) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// CategoriesByType returns the categories of the given type.
func (s *TransactionStore) CategoriesByType(typ TransactionType) []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Category
	for _, c := range s.categories {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// AddCategory appends a new category. Categories are append-only: there is no
// update or delete operation.
func (s *TransactionStore) AddCategory(c Category) Category {
	c.ID = NewID()

	s.mu.Lock()
	s.categories = append(slices.Clone(s.categories), c)
	snapshot := slices.Clone(s.categories)
	s.mu.Unlock()

	s.catsStream.Publish(snapshot)
	if err := s.storage.Set(KeyCategories, snapshot); err != nil {
		log.Printf("warning: could not persist categories: %v", err)
	}
	return c
}
