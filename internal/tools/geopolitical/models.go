// internal/tools/geopolitical/models.go
package geopolitical

type Input struct {
	Topic string `json:"topic"`
	// Query carries the raw user text so prompt refinement can pick up
	// details the canonical topic normalizes away, like tariff rates.
	Query string `json:"query,omitempty"`
}

// Output pairs the model's analysis with the headlines it was given.
type Output struct {
	Analysis string   `json:"analysis"`
	Articles []string `json:"articles"`
}
