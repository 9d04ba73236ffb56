package finance

import (
	"errors"
	"fmt"
)

// AssetType is a typed string for the kinds of portfolio holdings.
type AssetType string

const (
	Crypto AssetType = "crypto"
	Stock  AssetType = "stock"
	Forex  AssetType = "forex"
)

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(s) {
	case Crypto:
		return Crypto, nil
	case Stock:
		return Stock, nil
	case Forex:
		return Forex, nil
	default:
		return "", fmt.Errorf("unknown asset type: %q", s)
	}
}

// AssetKindInfo is the display metadata of one asset kind.
type AssetKindInfo struct {
	ID    AssetType `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
}

// AssetKinds returns the metadata of the supported asset kinds.
func AssetKinds() []AssetKindInfo {
	return []AssetKindInfo{
		{ID: Crypto, Name: "Cryptocurrency", Icon: "currency_bitcoin", Color: "#FF9800"},
		{ID: Stock, Name: "Stock", Icon: "trending_up", Color: "#2196F3"},
		{ID: Forex, Name: "Foreign Currency", Icon: "attach_money", Color: "#4CAF50"},
	}
}

// AssetKind returns the metadata for one asset kind.
func AssetKind(id AssetType) (AssetKindInfo, bool) {
	for _, k := range AssetKinds() {
		if k.ID == id {
			return k, true
		}
	}
	return AssetKindInfo{}, false
}

// Asset is a portfolio line item: a quantity of a tradable symbol bought at a
// recorded price. CurrentValue is derived from the latest known price of the
// symbol; it is persisted for convenience but recomputed on every mutation.
type Asset struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	Type          AssetType `json:"type"`
	Quantity      Quantity  `json:"quantity"`
	PurchasePrice Money     `json:"purchasePrice"`
	UnitPrice     Money     `json:"unitPrice"`
	PurchaseDate  Date      `json:"purchaseDate"`
	CurrentValue  Money     `json:"currentValue"`
}

// CostBasis returns quantity times unit purchase price.
func (a Asset) CostBasis() Money { return a.PurchasePrice.Mul(a.Quantity) }

// ProfitLoss returns the difference between the holding's current value and
// its cost basis.
func (a Asset) ProfitLoss() Money { return a.CurrentValue.Sub(a.CostBasis()) }

// ProfitLossPercent returns the profit relative to the cost basis. A holding
// with a zero cost basis yields 0, never a degenerate percentage.
func (a Asset) ProfitLossPercent() Percent { return a.ProfitLoss().PercentOf(a.CostBasis()) }

// Validate checks an asset for correctness and applies quick fixes (a zero
// purchase date resolves to today, missing currencies to the ledger's).
func (a Asset) Validate(currency string) (Asset, error) {
	if a.PurchaseDate.IsZero() {
		a.PurchaseDate = Today()
	}
	if _, err := ParseAssetType(string(a.Type)); err != nil {
		return a, err
	}
	if a.Symbol == "" {
		return a, errors.New("asset symbol is missing")
	}
	if !a.Quantity.IsPositive() {
		return a, fmt.Errorf("asset quantity must be positive, got %s", a.Quantity)
	}
	if a.PurchasePrice.IsNegative() {
		return a, fmt.Errorf("asset purchase price cannot be negative, got %s", a.PurchasePrice)
	}
	if a.PurchasePrice.Currency() == "" {
		a.PurchasePrice = M(a.PurchasePrice.Amount(), currency)
	} else if a.PurchasePrice.Currency() != currency {
		return a, fmt.Errorf("purchase price currency %s does not match the ledger currency %s", a.PurchasePrice.Currency(), currency)
	}
	if a.UnitPrice.Currency() == "" {
		a.UnitPrice = M(a.UnitPrice.Amount(), currency)
	} else if a.UnitPrice.Currency() != currency {
		return a, fmt.Errorf("unit price currency %s does not match the ledger currency %s", a.UnitPrice.Currency(), currency)
	}
	return a, nil
}

// AssetUpdate carries the partial fields of an update. Nil fields are left
// untouched on the existing record.
type AssetUpdate struct {
	Name          *string
	Symbol        *string
	Type          *AssetType
	Quantity      *Quantity
	PurchasePrice *Money
	UnitPrice     *Money
	PurchaseDate  *Date
}

func (u AssetUpdate) apply(a Asset) Asset {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Symbol != nil {
		a.Symbol = *u.Symbol
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.Quantity != nil {
		a.Quantity = *u.Quantity
	}
	if u.PurchasePrice != nil {
		a.PurchasePrice = *u.PurchasePrice
	}
	if u.UnitPrice != nil {
		a.UnitPrice = *u.UnitPrice
	}
	if u.PurchaseDate != nil {
		a.PurchaseDate = *u.PurchaseDate
	}
	return a
}

// Distribution is one asset kind's share of the total portfolio value.
type Distribution struct {
	Type       AssetType
	Value      Money
	Percentage Percent
}

// Performance is a holding decorated with its profit figures, as produced by
// the top performers ranking.
type Performance struct {
	Asset
	ProfitLoss        Money
	ProfitLossPercent Percent
}
