// internal/tools/exchangerate/models.go
package exchangerate

type Input struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Output struct {
	Rate float64 `json:"rate"`
}

// latestRatesResponse mirrors the live provider's base-currency payload.
type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}
