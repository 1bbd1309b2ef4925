// internal/tools/cryptoprice/handler.go
package cryptoprice

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"finance-agent/internal/common/httpclient"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/metrics"
)

const (
	ToolName = "getCryptoPrice"
)

// coinIDs maps common symbols to the fallback provider's coin IDs.
var coinIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"SOL":   "solana",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"LINK":  "chainlink",
	"SHIB":  "shiba-inu",
	"AVAX":  "avalanche-2",
	"LTC":   "litecoin",
	"MATIC": "matic-network",
}

type Handler struct {
	config         *Config
	primaryClient  *httpclient.Client
	fallbackClient *httpclient.Client
	logger         logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config:         config,
		primaryClient:  httpclient.NewClient(config.PrimaryTimeout),
		fallbackClient: httpclient.NewClient(config.FallbackTimeout),
		logger: log.With(map[string]interface{}{
			"tool": ToolName,
		}),
	}
}

// Execute resolves a coin price through the tiered chain: keyed primary
// provider, keyless fallback provider, then a labeled mock value. It
// never returns an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	symbol := strings.ToUpper(input.Symbol)

	if h.config.PrimaryAPIKey != "" {
		if price, ok := h.fetchPrimary(ctx, symbol); ok {
			return &Output{Price: price}, nil
		}
		metrics.ProviderFallbacks.WithLabelValues("coinmarketcap", "fallback_provider").Inc()
	}

	return &Output{Price: h.fetchFallback(ctx, symbol)}, nil
}

func (h *Handler) fetchPrimary(ctx context.Context, symbol string) (string, bool) {
	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", h.config.PrimaryBaseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("X-CMC_PRO_API_KEY", h.config.PrimaryAPIKey)

	resp, err := h.primaryClient.Do(req)
	if err != nil {
		h.logger.Warn("primary provider failed, falling back", map[string]interface{}{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var quote cmcQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return "", false
	}

	entry, ok := quote.Data[symbol]
	if !ok {
		return "", false
	}

	return fmt.Sprintf("$%.2f", entry.Quote.USD.Price), true
}

func (h *Handler) fetchFallback(ctx context.Context, symbol string) string {
	coinID, ok := coinIDs[symbol]
	if !ok {
		coinID = strings.ToLower(symbol)
	}

	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", h.config.FallbackBaseURL, coinID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return mockPriceWithError(err)
	}

	resp, err := h.fallbackClient.Do(req)
	if err != nil {
		h.logger.Error("fallback provider failed, using mock price", map[string]interface{}{
			"symbol": symbol,
			"error":  err.Error(),
		})
		metrics.ProviderFallbacks.WithLabelValues("coingecko", "mock").Inc()
		return mockPriceWithError(err)
	}
	defer resp.Body.Close()

	var prices map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		metrics.ProviderFallbacks.WithLabelValues("coingecko", "mock").Inc()
		return mockPriceWithError(err)
	}

	if usd, ok := prices[coinID]["usd"]; ok && usd != 0 {
		return fmt.Sprintf("$%.2f", usd)
	}

	metrics.ProviderFallbacks.WithLabelValues("coingecko", "mock").Inc()
	return fmt.Sprintf("$%.2f (Mock data - API response did not contain price information)", mockPrice())
}

// mockPrice draws a placeholder value from a fixed wide band.
func mockPrice() float64 {
	return rand.Float64()*10000 + 20000
}

func mockPriceWithError(err error) string {
	return fmt.Sprintf("$%.2f (Mock data - API Error: %v)", mockPrice(), err)
}
