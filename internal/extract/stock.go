// internal/extract/stock.go
package extract

import "regexp"

// tickerEntry maps a company-name pattern to its ticker. Entries are
// checked in order; the first match wins, taking priority over the
// bare capital-letter fallback.
type tickerEntry struct {
	Symbol  string
	Pattern *regexp.Regexp
	Name    string
}

var tickerTable = []tickerEntry{
	{"AAPL", regexp.MustCompile(`(?i)apple|aapl`), "Apple Inc."},
	{"MSFT", regexp.MustCompile(`(?i)microsoft|msft`), "Microsoft Corporation"},
	{"GOOGL", regexp.MustCompile(`(?i)google|googl|alphabet`), "Alphabet Inc. (Google)"},
	{"AMZN", regexp.MustCompile(`(?i)amazon|amzn`), "Amazon.com Inc."},
	{"META", regexp.MustCompile(`(?i)meta|facebook|fb`), "Meta Platforms Inc."},
	{"TSLA", regexp.MustCompile(`(?i)tesla|tsla`), "Tesla Inc."},
	{"NVDA", regexp.MustCompile(`(?i)nvidia|nvda`), "NVIDIA Corporation"},
	{"JPM", regexp.MustCompile(`(?i)jpmorgan|jpm|chase`), "JPMorgan Chase & Co."},
	{"V", regexp.MustCompile(`(?i)\bvisa\b|\bv\b`), "Visa Inc."},
	{"MA", regexp.MustCompile(`(?i)\bmastercard\b|\bma\b`), "Mastercard Incorporated"},
	{"DIS", regexp.MustCompile(`(?i)disney|dis`), "The Walt Disney Company"},
	{"NFLX", regexp.MustCompile(`(?i)netflix|nflx`), "Netflix Inc."},
	{"ADBE", regexp.MustCompile(`(?i)adobe|adbe`), "Adobe Inc."},
	{"INTC", regexp.MustCompile(`(?i)intel|intc`), "Intel Corporation"},
	{"AMD", regexp.MustCompile(`(?i)\bamd\b`), "Advanced Micro Devices Inc."},
	{"IBM", regexp.MustCompile(`(?i)\bibm\b`), "International Business Machines Corporation"},
	{"CSCO", regexp.MustCompile(`(?i)cisco|csco`), "Cisco Systems Inc."},
	{"KO", regexp.MustCompile(`(?i)coca.?cola|ko\b`), "The Coca-Cola Company"},
	{"PEP", regexp.MustCompile(`(?i)pepsi|pepsico|pep\b`), "PepsiCo Inc."},
	{"WMT", regexp.MustCompile(`(?i)walmart|wmt`), "Walmart Inc."},
	{"TGT", regexp.MustCompile(`(?i)target|tgt`), "Target Corporation"},
	{"SBUX", regexp.MustCompile(`(?i)starbucks|sbux`), "Starbucks Corporation"},
	{"NKE", regexp.MustCompile(`(?i)nike|nke`), "Nike Inc."},
}

// capitalToken is deliberately case-sensitive: it picks up bare
// ticker-looking tokens like TSLA or SHOP.
var capitalToken = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// stockStopwords are common words mistakable for ticker symbols.
var stockStopwords = map[string]bool{
	"I": true, "A": true, "THE": true, "OF": true, "IN": true, "ON": true,
	"AT": true, "TO": true, "IS": true, "AM": true, "ARE": true, "AND": true,
}

// StockSymbol extracts a ticker and company name from free text.
// Named companies in the ticker table take priority; otherwise the
// first bare capitalized token that is not a stopword is returned with
// an empty company name. Returns ("", "") when nothing usable is found.
func StockSymbol(input string) (symbol, companyName string) {
	for _, entry := range tickerTable {
		if entry.Pattern.MatchString(input) {
			return entry.Symbol, entry.Name
		}
	}

	if match := capitalToken.FindString(input); match != "" && !stockStopwords[match] {
		return match, ""
	}

	return "", ""
}
