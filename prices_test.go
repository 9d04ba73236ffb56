package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceTable_Defaults(t *testing.T) {
	p := newPriceTable(nil)
	if got := p.Price("BTC"); !got.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("Price(BTC) = %v, want 45000", got)
	}
	if got := p.Price("UNKNOWN"); !got.IsZero() {
		t.Errorf("Price(UNKNOWN) = %v, want 0", got)
	}
	if len(p.Deltas()) != 0 {
		t.Errorf("pristine table has deltas: %v", p.Deltas())
	}
}

func TestPriceTable_CustomOverridesDefaults(t *testing.T) {
	p := newPriceTable(map[string]decimal.Decimal{"BTC": decimal.NewFromInt(52000)})
	if got := p.Price("BTC"); !got.Equal(decimal.NewFromInt(52000)) {
		t.Errorf("Price(BTC) = %v, want 52000", got)
	}
	if got := p.Price("ETH"); !got.Equal(decimal.NewFromInt(3200)) {
		t.Errorf("Price(ETH) = %v, want default 3200", got)
	}
}

func TestPriceTable_Deltas(t *testing.T) {
	p := newPriceTable(nil)
	p.Set("BTC", decimal.NewFromInt(52000)) // differs from the default
	p.Set("ETH", decimal.NewFromInt(3200))  // equals the default
	p.Set("NEW", decimal.NewFromInt(7))     // not a default symbol

	deltas := p.Deltas()
	if len(deltas) != 2 {
		t.Fatalf("Deltas() = %v, want BTC and NEW only", deltas)
	}
	if !deltas["BTC"].Equal(decimal.NewFromInt(52000)) {
		t.Errorf("Deltas()[BTC] = %v, want 52000", deltas["BTC"])
	}
	if !deltas["NEW"].Equal(decimal.NewFromInt(7)) {
		t.Errorf("Deltas()[NEW] = %v, want 7", deltas["NEW"])
	}
}

func TestPriceTable_AllIsACopy(t *testing.T) {
	p := newPriceTable(nil)
	all := p.All()
	all["BTC"] = decimal.NewFromInt(1)
	if got := p.Price("BTC"); !got.Equal(decimal.NewFromInt(45000)) {
		t.Error("mutating the copy changed the table")
	}
}
