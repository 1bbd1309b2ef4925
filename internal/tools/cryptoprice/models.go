// internal/tools/cryptoprice/models.go
package cryptoprice

type Input struct {
	Symbol string `json:"symbol"`
}

// Output carries a display string: a dollar-prefixed price, possibly
// suffixed with a mock-data disclaimer when no live tier answered.
type Output struct {
	Price string `json:"price"`
}

// cmcQuoteResponse mirrors the primary provider's quotes/latest payload.
type cmcQuoteResponse struct {
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price float64 `json:"price"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}
