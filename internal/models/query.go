// internal/models/query.go
package models

// QueryRequest is the inbound payload for /api/query.
type QueryRequest struct {
	Prompt string `json:"prompt"`
}

// QueryResponse wraps the five-section trace returned to the client.
type QueryResponse struct {
	Response string `json:"response"`
}
