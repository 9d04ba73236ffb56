package finance

import (
	"maps"

	"github.com/shopspring/decimal"
)

// defaultPrices is the built-in price table. Prices are unit prices in the
// ledger currency; symbols not listed here resolve to zero until updated.
func defaultPrices() map[string]decimal.Decimal {
	prices := map[string]float64{
		// crypto
		"BTC":  45000,
		"ETH":  3200,
		"ADA":  0.45,
		"DOT":  6.2,
		"AVAX": 35,

		// forex
		"USD": 28.5,
		"EUR": 31.2,
		"GBP": 36.8,

		// stocks
		"THYAO": 185.5,
		"AKBNK": 45.2,
		"BIMAS": 95.8,
		"EREGL": 38.6,
		"GARAN": 82.3,
	}
	table := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		table[symbol] = decimal.NewFromFloat(price)
	}
	return table
}

// priceTable maps ticker symbols to their latest known unit price. It starts
// from the built-in defaults with persisted overrides merged on top; only the
// overrides (the delta from the defaults) are ever persisted.
type priceTable struct {
	prices map[string]decimal.Decimal
}

// newPriceTable builds a table from the defaults with custom prices merged over.
func newPriceTable(custom map[string]decimal.Decimal) *priceTable {
	prices := defaultPrices()
	maps.Copy(prices, custom)
	return &priceTable{prices: prices}
}

// Price returns the latest known unit price for symbol, or zero when the
// symbol is unknown. Unknown symbols are not an error condition.
func (p *priceTable) Price(symbol string) decimal.Decimal {
	return p.prices[symbol]
}

// Set upserts the price of a symbol.
func (p *priceTable) Set(symbol string, price decimal.Decimal) {
	p.prices[symbol] = price
}

// All returns a copy of the full table.
func (p *priceTable) All() map[string]decimal.Decimal {
	return maps.Clone(p.prices)
}

// Deltas returns the entries that differ from the built-in defaults. This is
// the only part of the table worth persisting.
func (p *priceTable) Deltas() map[string]decimal.Decimal {
	defaults := defaultPrices()
	deltas := make(map[string]decimal.Decimal)
	for symbol, price := range p.prices {
		if def, ok := defaults[symbol]; !ok || !def.Equal(price) {
			deltas[symbol] = price
		}
	}
	return deltas
}
