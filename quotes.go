package finance

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Live quote providers for the symbols of the price table. Quotes are always
// expressed in the ledger currency. Prices remain manually updatable; fetching
// is an optional convenience on top of the same upsert path.

// coinIDs maps crypto ticker symbols to the identifiers of the public quote API.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"ADA":  "cardano",
	"DOT":  "polkadot",
	"AVAX": "avalanche-2",
}

// forexSymbols are the currency symbols the forex endpoint can quote.
var forexSymbols = map[string]bool{"USD": true, "EUR": true, "GBP": true}

// QuotableSymbols returns the symbols FetchQuotes knows how to resolve.
func QuotableSymbols() []string {
	symbols := make([]string, 0, len(coinIDs)+len(forexSymbols))
	for s := range coinIDs {
		symbols = append(symbols, s)
	}
	for s := range forexSymbols {
		symbols = append(symbols, s)
	}
	return symbols
}

// FetchQuotes fetches the latest unit price in the given currency for each
// requested symbol. Symbols without a known provider are reported as errors;
// the returned map holds every quote that could be resolved, so a single
// failing symbol never discards the others.
func FetchQuotes(currency string, symbols []string) (map[string]decimal.Decimal, error) {
	client := new(http.Client)
	quotes := make(map[string]decimal.Decimal)
	var errs error

	for _, symbol := range symbols {
		var (
			val float64
			err error
		)
		switch {
		case coinIDs[symbol] != "":
			val, err = fetchCoinQuote(client, coinIDs[symbol], currency)
		case forexSymbols[symbol]:
			val, err = fetchForexQuote(client, symbol, currency)
		default:
			err = fmt.Errorf("no quote provider for symbol %q", symbol)
		}
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not fetch quote for %s: %w", symbol, err))
			continue
		}
		quotes[symbol] = decimal.NewFromFloat(val)
	}
	return quotes, errs
}

// fetchCoinQuote reads a crypto price from the coingecko simple-price endpoint.
func fetchCoinQuote(client *http.Client, coinID, currency string) (float64, error) {
	cur := strings.ToLower(currency)
	addr := fmt.Sprintf("https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies=%s", coinID, cur)

	var jobj any
	if err := fetchJSON(client, addr, &jobj); err != nil {
		return 0, err
	}
	// bracket notation: coin ids like "avalanche-2" are not valid dot keys.
	path := fmt.Sprintf("$[%q][%q]", coinID, cur)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote: %q %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing quote: %q not a float: %v", path, jval)
	}
	return val, nil
}

// fetchForexQuote reads the unit price of one foreign currency expressed in
// the ledger currency from a public exchange-rate endpoint.
func fetchForexQuote(client *http.Client, symbol, currency string) (float64, error) {
	addr := "https://open.er-api.com/v6/latest/" + symbol

	var jobj any
	if err := fetchJSON(client, addr, &jobj); err != nil {
		return 0, err
	}
	path := "$.rates." + currency
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing rate: %q %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing rate: %q not a float: %v", path, jval)
	}
	if val == 0 {
		return 0, fmt.Errorf("empty rate for %s", symbol)
	}
	return val, nil
}
