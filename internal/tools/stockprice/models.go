// internal/tools/stockprice/models.go
package stockprice

type Input struct {
	Symbol string `json:"symbol"`
}

// Output carries a display string: either a dollar-prefixed price or a
// descriptive failure message. This tool reports failure as a value,
// never as an error.
type Output struct {
	Price string `json:"price"`
}

// globalQuoteResponse mirrors the provider's GLOBAL_QUOTE payload.
type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
}
