// internal/agent/predicates.go
package agent

import (
	"regexp"

	"finance-agent/internal/extract"
)

// Stage predicates. Each stage matches when at least one phrase
// alternative matches and, where present, the companion condition also
// matches. All are case-insensitive except the bare capital-token scan.
var (
	// Price-phrase alternatives shared by the crypto and stock stages.
	pricePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)what(?:'s| is) (?:the (?:current|latest|)|)(?:price|value) of`),
		regexp.MustCompile(`(?i)how much (?:is|does|are) .* (?:cost|worth|value)`),
		regexp.MustCompile(`(?i)what(?:'s| is) .* worth right now`),
		regexp.MustCompile(`(?i)what(?:'s| is) .* trading at`),
		regexp.MustCompile(`(?i)(?:price|worth) (?:of|for) .*`),
	}

	// The stock stage accepts two extra phrasings on top of pricePhrases.
	stockPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:price|worth|value) (?:of|for) .*`),
		regexp.MustCompile(`(?i)current (?:stock |share |)price`),
	}

	// Companion condition for the stock stage: a stock-related term or a
	// bare ticker-looking token. stockToken is deliberately case-sensitive.
	stockTerm  = regexp.MustCompile(`(?i)stock|share|ticker|NYSE|NASDAQ|company|corporation|inc\.|trading`)
	stockToken = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

	// Currency stages. The strict stage requires explicit conversion
	// phrasing; the legacy stage accepts the looser keyword set. Both
	// require a recognized currency token, or (strict only) a pair of
	// bare 3-letter codes.
	strictCurrencyPhrase = regexp.MustCompile(`(?i)exchange rate|\bconvert\b`)
	currencyKeyword      = regexp.MustCompile(`(?i)convert|conversion|exchange`)
	currencyToken        = regexp.MustCompile(`(?i)\$|USD|dollar|₹|INR|rupee|EUR|euro|£|GBP|pound|¥|JPY|yen`)
	currencyCode         = regexp.MustCompile(`\b[A-Z]{3}\b`)

	// News stage: a news-seeking predicate AND a finance-topical
	// predicate, or a direct phrase.
	newsSeeking    = regexp.MustCompile(`(?i)\bnews\b|\bheadlines?\b|latest .* about|what'?s happening`)
	financeTopical = regexp.MustCompile(`(?i)finance|financial|market|stock|crypto|bitcoin|ethereum|india|sensex|nifty|\b2025\b|\bipos?\b|budget|tariffs?|trade wars?`)
	directNews     = regexp.MustCompile(`(?i)market news|financial news`)

	// Geopolitical stage keywords.
	geopoliticalKeyword = regexp.MustCompile(`(?i)trade wars?|tariffs?|trade tensions?|economic sanctions|geopolitical tensions`)
)

func matchesAny(patterns []*regexp.Regexp, input string) bool {
	for _, p := range patterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}

// hasCodePair reports whether the input mentions at least two distinct
// bare 3-letter uppercase codes.
func hasCodePair(input string) bool {
	codes := currencyCode.FindAllString(input, -1)
	seen := map[string]bool{}
	for _, c := range codes {
		seen[c] = true
		if len(seen) >= 2 {
			return true
		}
	}
	return false
}

func matchStrictCurrency(input string) bool {
	return strictCurrencyPhrase.MatchString(input) &&
		(currencyToken.MatchString(input) || hasCodePair(input))
}

func matchCrypto(input string) bool {
	return matchesAny(pricePhrases, input) && extract.CoinMention.MatchString(input)
}

func matchStock(input string) bool {
	if !matchesAny(pricePhrases, input) && !matchesAny(stockPhrases, input) {
		return false
	}
	return stockTerm.MatchString(input) || stockToken.MatchString(input)
}

func matchLegacyCurrency(input string) bool {
	return currencyKeyword.MatchString(input) && currencyToken.MatchString(input)
}

func matchNews(input string) bool {
	if directNews.MatchString(input) {
		return true
	}
	return newsSeeking.MatchString(input) && financeTopical.MatchString(input)
}

func matchGeopolitical(input string) bool {
	return geopoliticalKeyword.MatchString(input)
}
