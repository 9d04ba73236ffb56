package finance

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// AssetStore owns the list of portfolio holdings and the symbol price table.
// It exposes the holdings as an observable stream and provides CRUD, buy/sell,
// pricing and aggregation operations.
//
// Mutations follow the same sequence as the transaction store: build the new
// collection, publish it, persist it. Persistence failures are logged; the
// in-memory state stays authoritative.
type AssetStore struct {
	mu       sync.Mutex
	storage  *Storage
	currency string

	assets []Asset
	prices *priceTable

	stream *Stream[[]Asset]
}

// NewAssetStore loads custom prices and persisted holdings from storage and
// returns a ready store. Current values are recomputed from the merged price
// table at load time, so a stale persisted value never survives a restart.
func NewAssetStore(storage *Storage, currency string) *AssetStore {
	s := &AssetStore{storage: storage, currency: currency}

	custom := make(map[string]decimal.Decimal)
	storage.Get(KeyCustomPrices, &custom)
	s.prices = newPriceTable(custom)

	var assets []Asset
	storage.Get(KeyAssets, &assets)
	for i := range assets {
		assets[i].CurrentValue = s.currentValue(assets[i])
	}
	s.assets = assets

	s.stream = NewStream(slices.Clone(s.assets))
	return s
}

// Currency returns the ledger currency of this store.
func (s *AssetStore) Currency() string { return s.currency }

// Storage returns the storage backing this store.
func (s *AssetStore) Storage() *Storage { return s.storage }

// currentValue computes quantity times the latest known price for the symbol.
func (s *AssetStore) currentValue(a Asset) Money {
	return M(s.prices.Price(a.Symbol), s.currency).Mul(a.Quantity)
}

// Assets returns a snapshot of the current holdings.
func (s *AssetStore) Assets() []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.assets)
}

// Subscribe registers fn on the holdings stream. fn immediately receives the
// current collection, then every subsequent one.
func (s *AssetStore) Subscribe(fn func([]Asset)) (cancel func()) {
	return s.stream.Subscribe(fn)
}

// publish pushes the current holdings to subscribers and persists them.
func (s *AssetStore) publish() {
	s.mu.Lock()
	snapshot := slices.Clone(s.assets)
	s.mu.Unlock()

	s.stream.Publish(snapshot)
	if err := s.storage.Set(KeyAssets, snapshot); err != nil {
		log.Printf("warning: could not persist assets: %v", err)
	}
}

// Add validates the holding, assigns it a new identifier, computes its current
// value from the price table, appends, publishes and persists.
func (s *AssetStore) Add(a Asset) (Asset, error) {
	a, err := a.Validate(s.currency)
	if err != nil {
		return a, err
	}
	a.ID = NewID()

	s.mu.Lock()
	a.CurrentValue = s.currentValue(a)
	s.assets = append(slices.Clone(s.assets), a)
	s.mu.Unlock()

	s.publish()
	return a, nil
}

// Update merges the given fields into the holding with this id, recomputes its
// current value, publishes and persists. It reports whether the id was found.
func (s *AssetStore) Update(id string, fields AssetUpdate) (bool, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	merged, err := fields.apply(s.assets[i]).Validate(s.currency)
	if err != nil {
		s.mu.Unlock()
		return true, err
	}
	merged.ID = id
	merged.CurrentValue = s.currentValue(merged)
	assets := slices.Clone(s.assets)
	assets[i] = merged
	s.assets = assets
	s.mu.Unlock()

	s.publish()
	return true, nil
}

// Delete removes the holding with this id. Deleting an absent id is an
// idempotent no-op; the return value reports whether a record was removed.
func (s *AssetStore) Delete(id string) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.assets = slices.Delete(slices.Clone(s.assets), i, i+1)
	s.mu.Unlock()

	s.publish()
	return true
}

// Get returns the holding with this id.
func (s *AssetStore) Get(id string) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return Asset{}, false
	}
	return s.assets[i], true
}

// Sell decrements the holding's quantity. Selling the full position removes
// the holding entirely; a zero-quantity row is never retained. Selling more
// than the position holds is rejected.
func (s *AssetStore) Sell(id string, quantity Quantity) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("sell quantity must be positive, got %s", quantity)
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("holding %q not found", id)
	}
	held := s.assets[i]
	if held.Quantity.LessThan(quantity) {
		s.mu.Unlock()
		return fmt.Errorf("cannot sell %s of %s, position is only %s", quantity, held.Symbol, held.Quantity)
	}

	assets := slices.Clone(s.assets)
	remaining := held.Quantity.Sub(quantity)
	if remaining.IsZero() {
		assets = slices.Delete(assets, i, i+1)
	} else {
		held.Quantity = remaining
		held.CurrentValue = s.currentValue(held)
		assets[i] = held
	}
	s.assets = assets
	s.mu.Unlock()

	s.publish()
	return nil
}

// CurrentPrice returns the latest known unit price for symbol, or zero for an
// unknown symbol.
func (s *AssetStore) CurrentPrice(symbol string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices.Price(symbol)
}

// Prices returns a copy of the full price table.
func (s *AssetStore) Prices() map[string]decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices.All()
}

// UpdatePrice upserts the price of a symbol and recomputes the current value
// of every holding that references it. Only deltas from the built-in defaults
// are persisted.
func (s *AssetStore) UpdatePrice(symbol string, price decimal.Decimal) {
	s.UpdatePrices(map[string]decimal.Decimal{symbol: price})
}

// UpdatePrices upserts several prices at once, then refreshes all holdings.
func (s *AssetStore) UpdatePrices(prices map[string]decimal.Decimal) {
	s.mu.Lock()
	for symbol, price := range prices {
		s.prices.Set(symbol, price)
	}
	assets := slices.Clone(s.assets)
	for i := range assets {
		assets[i].CurrentValue = s.currentValue(assets[i])
	}
	s.assets = assets
	deltas := s.prices.Deltas()
	s.mu.Unlock()

	if err := s.storage.Set(KeyCustomPrices, deltas); err != nil {
		log.Printf("warning: could not persist custom prices: %v", err)
	}
	s.publish()
}

// ByType returns all holdings of the given kind.
func (s *AssetStore) ByType(typ AssetType) []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Asset
	for _, a := range s.assets {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

// TotalPortfolioValue sums the current value of all holdings.
func (s *AssetStore) TotalPortfolioValue() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := M(0, s.currency)
	for _, a := range s.assets {
		total = total.Add(a.CurrentValue)
	}
	return total
}

// TotalInvestment sums quantity times purchase price over all holdings.
func (s *AssetStore) TotalInvestment() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := M(0, s.currency)
	for _, a := range s.assets {
		total = total.Add(a.CostBasis())
	}
	return total
}

// TotalProfitLoss is the difference between the portfolio value and the total
// investment.
func (s *AssetStore) TotalProfitLoss() Money {
	return s.TotalPortfolioValue().Sub(s.TotalInvestment())
}

// TotalProfitLossPercent is the total profit relative to the total investment,
// defined as 0 when the investment is zero.
func (s *AssetStore) TotalProfitLossPercent() Percent {
	return s.TotalProfitLoss().PercentOf(s.TotalInvestment())
}

// Distribution groups current value by asset kind and returns each kind's
// share of the total portfolio value. Shares are 0 when the total is zero,
// never NaN. Kinds appear in first-seen order.
func (s *AssetStore) Distribution() []Distribution {
	total := s.TotalPortfolioValue()

	s.mu.Lock()
	defer s.mu.Unlock()
	var dist []Distribution
	index := make(map[AssetType]int)
	for _, a := range s.assets {
		i, ok := index[a.Type]
		if !ok {
			i = len(dist)
			index[a.Type] = i
			dist = append(dist, Distribution{Type: a.Type, Value: M(0, s.currency)})
		}
		dist[i].Value = dist[i].Value.Add(a.CurrentValue)
	}
	for i := range dist {
		dist[i].Percentage = dist[i].Value.PercentOf(total)
	}
	return dist
}

// TopPerformers ranks holdings by profit percentage, highest first, and
// returns at most limit of them. Holdings with a zero cost basis rank at 0%,
// consistently with every other percentage in the store.
func (s *AssetStore) TopPerformers(limit int) []Performance {
	s.mu.Lock()
	performers := make([]Performance, 0, len(s.assets))
	for _, a := range s.assets {
		performers = append(performers, Performance{
			Asset:             a,
			ProfitLoss:        a.ProfitLoss(),
			ProfitLossPercent: a.ProfitLossPercent(),
		})
	}
	s.mu.Unlock()

	slices.SortStableFunc(performers, func(a, b Performance) int {
		switch {
		case a.ProfitLossPercent > b.ProfitLossPercent:
			return -1
		case a.ProfitLossPercent < b.ProfitLossPercent:
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(performers) > limit {
		performers = performers[:limit]
	}
	return performers
}
