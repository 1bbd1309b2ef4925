// internal/tools/exchangerate/handler.go
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"finance-agent/internal/common/errors"
	"finance-agent/internal/common/httpclient"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/metrics"
)

const (
	ToolName = "getExchangeRate"
)

// staticRates covers the common pairs when the live provider is down.
var staticRates = map[string]float64{
	"USD_EUR": 0.92,
	"EUR_USD": 1.09,
	"USD_GBP": 0.79,
	"GBP_USD": 1.27,
	"USD_JPY": 154.32,
	"JPY_USD": 0.0065,
	"USD_INR": 83.5,
	"INR_USD": 0.012,
}

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

// Execute resolves a conversion rate, degrading monotonically: live
// rate table, static pair table, cross-rate through USD, then the
// neutral default 1.0. It never returns an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	from := strings.ToUpper(input.From)
	to := strings.ToUpper(input.To)

	if from == to {
		return &Output{Rate: 1.0}, nil
	}

	if rate, ok := h.fetchLive(ctx, from, to); ok {
		return &Output{Rate: rate}, nil
	}
	metrics.ProviderFallbacks.WithLabelValues("exchange_rate", "static_table").Inc()

	key := from + "_" + to
	if rate, ok := staticRates[key]; ok {
		return &Output{Rate: rate}, nil
	}

	// Cross-rate through the USD rows of the static table:
	// rate(A,B) = (1/rate(USD,A)) * rate(USD,B).
	usdFrom, okFrom := staticRates["USD_"+from]
	usdTo, okTo := staticRates["USD_"+to]
	if okFrom && okTo && usdFrom != 0 {
		metrics.ProviderFallbacks.WithLabelValues("exchange_rate", "cross_rate").Inc()
		return &Output{Rate: usdTo / usdFrom}, nil
	}

	h.logger.WithError(errors.NewPairNotFoundError(from, to)).Warn("no rate available, using neutral default", map[string]interface{}{
		"from": from,
		"to":   to,
	})
	metrics.ProviderFallbacks.WithLabelValues("exchange_rate", "neutral_default").Inc()
	return &Output{Rate: 1.0}, nil
}

func (h *Handler) fetchLive(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/v4/latest/%s", h.config.BaseURL, from)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Warn("live rate table unavailable", map[string]interface{}{
			"base":  from,
			"error": err.Error(),
		})
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false
	}

	var latest latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return 0, false
	}

	rate, ok := latest.Rates[to]
	if !ok || rate == 0 {
		return 0, false
	}
	return rate, true
}
