// internal/extract/currency.go
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Amounts may be grouped with commas in either western (1,000,000) or
// Indian (1,00,000) style.
var amountPattern = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)

type currencyPattern struct {
	Code    string
	Pattern *regexp.Regexp
}

// Checked in order; the first two distinct codes found become the
// from/to sides of the pair.
var currencyPatterns = []currencyPattern{
	{"USD", regexp.MustCompile(`(?i)\$|USD|dollar`)},
	{"INR", regexp.MustCompile(`(?i)₹|INR|rupee`)},
	{"EUR", regexp.MustCompile(`(?i)€|EUR|euro`)},
	{"GBP", regexp.MustCompile(`(?i)£|GBP|pound`)},
	{"JPY", regexp.MustCompile(`(?i)¥|JPY|yen`)},
}

// bareCode matches explicit 3-letter uppercase currency codes.
var bareCode = regexp.MustCompile(`\b[A-Z]{3}\b`)

// Amount extracts the first numeric token, commas stripped. Returns 0
// when no number is present.
func Amount(input string) float64 {
	match := amountPattern.FindString(input)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

// CurrencyPair detects the from/to currencies via the symbol/keyword
// table. When only one side is found, the other defaults to USD.
// Returns empty strings when no currency is mentioned at all.
func CurrencyPair(input string) (from, to string) {
	for _, cp := range currencyPatterns {
		if cp.Pattern.MatchString(input) {
			if from == "" {
				from = cp.Code
			} else if to == "" {
				to = cp.Code
				break
			}
		}
	}

	if from != "" && to == "" {
		to = "USD"
	} else if from == "" && to != "" {
		from = "USD"
	}

	return from, to
}

// CurrencyPairWithCodes behaves like CurrencyPair but additionally
// accepts bare 3-letter uppercase codes; when two distinct codes are
// present in the text, they override the name-based detection.
func CurrencyPairWithCodes(input string) (from, to string) {
	codes := bareCode.FindAllString(input, -1)

	var distinct []string
	seen := map[string]bool{}
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}

	if len(distinct) >= 2 {
		return distinct[0], distinct[1]
	}

	return CurrencyPair(input)
}
