// internal/extract/news.go
package extract

import "regexp"

type topicEntry struct {
	Pattern *regexp.Regexp
	Topic   string
}

// Trade-tension queries are refined by trading bloc before the general
// table runs. The US-China dispute is the default; an EU or India
// mention redirects the topic so downstream analysis targets the right
// bloc instead of collapsing everything to US-China.
var (
	tradeTension = regexp.MustCompile(`(?i)tariffs?|trade wars?|trade tensions?`)
	euBloc       = regexp.MustCompile(`(?i)\beu\b|europe|european union`)
	indiaBloc    = regexp.MustCompile(`(?i)india`)
)

// Checked in order; more specific topics outrank broader ones (a query
// about the Indian budget must not collapse to plain "india").
var topicTable = []topicEntry{
	{regexp.MustCompile(`(?i)(indian?|union).{0,20}budget|budget.{0,20}india`), "indian budget"},
	{regexp.MustCompile(`(?i)\bipos?\b`), "ipo"},
	{regexp.MustCompile(`(?i)india|sensex|nifty`), "india"},
	{regexp.MustCompile(`(?i)\b2025\b|future`), "2025 finance forecast"},
	{regexp.MustCompile(`(?i)crypto|bitcoin|ethereum`), "crypto"},
}

// NewsTopic derives a canonical topic string from free text. Company
// names from the ticker table are used as-is; everything else falls
// back to "stock market".
func NewsTopic(input string) string {
	if tradeTension.MatchString(input) {
		switch {
		case euBloc.MatchString(input):
			return "EU tariff war"
		case indiaBloc.MatchString(input):
			return "India trade tensions"
		default:
			return "US-China tariff war"
		}
	}

	for _, entry := range topicTable {
		if entry.Pattern.MatchString(input) {
			return entry.Topic
		}
	}

	for _, entry := range tickerTable {
		if entry.Pattern.MatchString(input) {
			return entry.Name
		}
	}

	return "stock market"
}
