// internal/tools/stockprice/handler.go
package stockprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"finance-agent/internal/common/errors"
	"finance-agent/internal/common/httpclient"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/metrics"
)

const (
	ToolName = "getStockPrice"
)

type Handler struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log.With(map[string]interface{}{
			"tool": ToolName,
		}),
	}
}

// Execute fetches a quote for the ticker. Every failure mode collapses
// into a message string in Output.Price; the error return is always nil
// so the router never needs adapter-specific handling here.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if h.config.APIKey == "" {
		metrics.ProviderFallbacks.WithLabelValues("alpha_vantage", "missing_key").Inc()
		return &Output{Price: "Alpha Vantage API key not configured. Please add it to your .env file."}, nil
	}

	url := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		h.config.BaseURL, input.Symbol, h.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Output{Price: fmt.Sprintf("Error retrieving stock price: %v", err)}, nil
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error("quote request failed", map[string]interface{}{
			"symbol": input.Symbol,
			"error":  err.Error(),
		})
		metrics.ProviderFallbacks.WithLabelValues("alpha_vantage", "transport_error").Inc()
		return &Output{Price: fmt.Sprintf("Error retrieving stock price: %v", err)}, nil
	}
	defer resp.Body.Close()

	var quote globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		h.logger.Error("quote decode failed", map[string]interface{}{
			"symbol": input.Symbol,
			"error":  err.Error(),
		})
		return &Output{Price: fmt.Sprintf("Error retrieving stock price: %v", err)}, nil
	}

	if raw, ok := quote.GlobalQuote["05. price"]; ok && raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return &Output{Price: fmt.Sprintf("$%.2f", price)}, nil
		}
	}

	if strings.Contains(quote.Note, "API call frequency") {
		metrics.ProviderFallbacks.WithLabelValues("alpha_vantage", "rate_limited").Inc()
		return &Output{Price: "API call frequency exceeded. Alpha Vantage has a limit of 5 calls per minute and 500 calls per day for free accounts."}, nil
	}

	h.logger.WithError(errors.NewSymbolNotFoundError(input.Symbol)).Warn("symbol missing from quote response", map[string]interface{}{
		"symbol": input.Symbol,
	})
	return &Output{Price: fmt.Sprintf("Could not retrieve price for %s. Please check the ticker symbol.", input.Symbol)}, nil
}
